package ui

import "strings"

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
)

type State int

const (
	StateIdle State = iota
	StateSubmitted
	StateLoading
	StateWarning
	StateSuccess
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitted:
		return "submitted"
	case StateLoading:
		return "loading"
	case StateWarning:
		return "warning"
	case StateSuccess:
		return "success"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// View is everything the page needs to draw itself after one submit cycle.
type View struct {
	State      State
	Input      string
	Message    string
	Label      string
	Progress   float64
	Confidence string
}

func IdleView() View {
	return View{State: StateIdle}
}

func (v View) ShowProgress() bool {
	return v.State == StateSuccess
}

// Banner is the success line in markdown. The label is escaped so codes
// such as LABEL_1_x show up verbatim.
func (v View) Banner() string {
	if v.State != StateSuccess {
		return ""
	}
	return "**Sentiment**: " + markdownEscaper.Replace(v.Label)
}

// ProgressPercent clamps Progress to [0, 100] for drawing.
func (v View) ProgressPercent() float64 {
	switch {
	case v.Progress < 0:
		return 0
	case v.Progress > 1:
		return 100
	default:
		return v.Progress * 100
	}
}

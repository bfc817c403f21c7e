// Package notice carries transient user-facing messages emitted by store
// mutations. Every validation failure is a notice, never a hard error.
package notice

// Notice is a single on-screen message. Destructive marks failures the UI
// should render as warnings.
type Notice struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Destructive bool   `json:"destructive,omitempty"`
}

func Info(title, description string) Notice {
	return Notice{Title: title, Description: description}
}

func Warn(title, description string) Notice {
	return Notice{Title: title, Description: description, Destructive: true}
}

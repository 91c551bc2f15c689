package core

type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

// LoadSignal reports that a file replaced the document.
type LoadSignal struct {
	path     string
	language string
}

func (l LoadSignal) Value() (path, language string) {
	path = l.path
	language = l.language

	return path, language
}

type ThemeSignal struct {
	name string
}

func (t ThemeSignal) Value() string {
	return t.name
}

func (s *Session) DispatchSignal(signal Signal) {
	select {
	case s.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}

package core

import (
	"errors"

	"github.com/Zen-Editor/zen/internal/log"
)

var (
	ErrEmptyPath       = errors.New("empty path")
	ErrReadFile        = errors.New("cannot read file")
	ErrWriteFile       = errors.New("cannot write file")
	ErrInvalidPosition = errors.New("invalid position")
	ErrNoFile          = errors.New("no file loaded")
)

type ErrorId int

const (
	ErrEmptyPathId ErrorId = iota
	ErrReadFileId
	ErrInvalidPositionId
	ErrNoFileId
	ErrCopyFailedId
	ErrSaveConfigId
	ErrWatchId
	ErrWriteFileId
)

type Error struct {
	id  ErrorId
	err error
}

func (e Error) Error() string {
	if e.err == nil {
		return "unknown error"
	}
	return e.err.Error()
}

func (e Error) Unwrap() error {
	return e.err
}

func (e Error) ID() ErrorId {
	return e.id
}

func (s *Session) DispatchError(id ErrorId, err error) {
	select {
	case s.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Warn(log.CatUI, "signal channel full, dropping error", "error", err)
	}
}

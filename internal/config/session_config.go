package config

import "time"

type SessionConfig interface {
	GetStateTokenLength() int
	GetSessionIDLength() int
	GetStateTokenTTL() time.Duration
	GetStateSweepInterval() time.Duration
}

type Session struct{}

var _ SessionConfig = Session{}

func (Session) GetStateTokenLength() int {
	return 16
}

func (Session) GetSessionIDLength() int {
	return 32
}

// GetStateTokenTTL bounds how long an unconsumed state token stays valid.
// Abandoned logins would otherwise leak registry entries for the process
// lifetime.
func (Session) GetStateTokenTTL() time.Duration {
	return 15 * time.Minute
}

func (Session) GetStateSweepInterval() time.Duration {
	return time.Minute
}

package domain

import "errors"

// Error taxonomy for the resolution pipeline. Every failure raised to the
// command layer wraps exactly one of these sentinels; none are retried.
var (
	// ErrConfiguration marks mutually exclusive or missing-dependency flags,
	// always detected before any provider call.
	ErrConfiguration = errors.New("invalid flag combination")

	// ErrInvalidArgument marks an out-of-range limit, an unresolvable local
	// list name, or missing command text where text was required.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrEmptyQueue is raised when resume is requested with nothing queued
	// and nothing paused.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrNoResults is raised when a resolved collection turned out to have
	// zero playable members after a match was already selected. A search
	// that itself returns zero candidates is not an error but a notice.
	ErrNoResults = errors.New("no results found")

	// ErrAuthorization is raised when a user-scoped credential session is
	// unavailable or cannot be refreshed.
	ErrAuthorization = errors.New("not authorized")

	// ErrNoVoiceChannel is raised when the requesting user is not in a
	// resolvable voice channel at the moment playback should start.
	ErrNoVoiceChannel = errors.New("you are not in a voice channel")

	// ErrPlaybackStart is raised when the audio gateway failed to begin
	// playback.
	ErrPlaybackStart = errors.New("failed to start playback")

	// ErrPromptExpired is raised when a disambiguation selection arrives for
	// a prompt that was superseded, expired or never offered.
	ErrPromptExpired = errors.New("this selection is no longer active")
)

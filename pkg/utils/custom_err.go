package utils

import "errors"

var (
	ErrInvalidPage     = errors.New("invalid page parameter")
	ErrInvalidPageSize = errors.New("invalid page size parameter")
	ErrInvalidInput    = errors.New("invalid input")
	ErrDatabaseError   = errors.New("database error")

	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired reset token")

	// Login-required and premium-required stay distinct so callers can tell
	// "sign in and retry" apart from "must pay".
	ErrLoginRequired   = errors.New("login required")
	ErrPremiumRequired = errors.New("premium access required")

	ErrTrialAlreadyStarted = errors.New("trial already started")
	ErrTrialAlreadyUsed    = errors.New("trial already used")

	ErrCountryNotFound  = errors.New("country not found")
	ErrPhraseNotFound   = errors.New("phrase not found")
	ErrTipNotFound      = errors.New("tip not found")
	ErrPlanNotFound     = errors.New("plan not found")
	ErrBookmarkExists   = errors.New("phrase already bookmarked")
	ErrFavoriteExists   = errors.New("country already favorited")
	ErrAlreadyUpvoted   = errors.New("tip already upvoted")
	ErrBookmarkNotFound = errors.New("bookmark not found")

	ErrUnexpectedBehaviorOfAI = errors.New("unexpected AI response")
	ErrPoorQualityInput       = errors.New("prompt too vague to act on")

	RecordNotFound = errors.New("record not found")
)

package task

import "context"

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Parse validates a task line and extracts its attributes.
	Parse(ctx context.Context, input ParseInput) (ParseOutput, error)

	// Suggest completes a partial vocabulary word.
	Suggest(ctx context.Context, input SuggestInput) (SuggestOutput, error)

	// Languages lists the supported vocabulary languages.
	Languages(ctx context.Context) []LanguageInfo
}

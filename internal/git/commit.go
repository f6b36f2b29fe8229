package git

import "context"

// Commit creates a commit with the given message
func (o *CLIOperations) Commit(ctx context.Context, message string) Result {
	return o.run(ctx, "commit", "-m", message)
}

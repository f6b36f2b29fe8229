package git

import "context"

// StageAll stages all changes, including untracked files and removals
func (o *CLIOperations) StageAll(ctx context.Context) Result {
	return o.run(ctx, "add", "-A")
}

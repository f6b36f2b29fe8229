package git

import "context"

// Push pushes branch to DefaultRemote with upstream tracking (-u)
func (o *CLIOperations) Push(ctx context.Context, branch string) Result {
	return o.run(ctx, "push", "-u", DefaultRemote, branch)
}

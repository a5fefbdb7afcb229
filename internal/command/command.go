// Package command holds the client's user-facing actions. Each action is a Command so the session
// and transport layers can depend on the shape of an action rather than its collaborators.
package command

import "context"

// Command is the generic interface for all commands.
type Command[Req, Res any] interface {
	Execute(ctx context.Context, req Req) (Res, error)
}

// Func adapts an ordinary function to a Command.
type Func[Req, Res any] func(ctx context.Context, req Req) (Res, error)

func (f Func[Req, Res]) Execute(ctx context.Context, req Req) (Res, error) {
	return f(ctx, req)
}

// Empty is used as the request or result type of commands that carry no data.
type Empty struct{}

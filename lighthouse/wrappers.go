package lighthouse

import (
	"context"

	"github.com/katzenpost/lighthouse-go/protocol"
	"github.com/katzenpost/lighthouse-go/protocol/input"
)

// Post combines PUT and CREATE. Requires CREATE and WRITE permission.
func Post[P any](ctx context.Context, c *Client, path []string, payload P) (protocol.ServerMessage[struct{}], error) {
	return Perform[P, struct{}](ctx, c, protocol.VerbPost, path, payload)
}

// Put updates the resource at path. Requires WRITE permission.
func Put[P any](ctx context.Context, c *Client, path []string, payload P) (protocol.ServerMessage[struct{}], error) {
	return Perform[P, struct{}](ctx, c, protocol.VerbPut, path, payload)
}

// Create creates a resource at path. Requires CREATE permission.
func Create(ctx context.Context, c *Client, path []string) (protocol.ServerMessage[struct{}], error) {
	return Perform[struct{}, struct{}](ctx, c, protocol.VerbCreate, path, struct{}{})
}

// Delete deletes the resource at path. Requires DELETE permission.
func Delete(ctx context.Context, c *Client, path []string) (protocol.ServerMessage[struct{}], error) {
	return Perform[struct{}, struct{}](ctx, c, protocol.VerbDelete, path, struct{}{})
}

// Mkdir creates a directory at path. Requires CREATE permission.
func Mkdir(ctx context.Context, c *Client, path []string) (protocol.ServerMessage[struct{}], error) {
	return Perform[struct{}, struct{}](ctx, c, protocol.VerbMkdir, path, struct{}{})
}

// List lists the directory tree at path. Requires READ permission.
func List(ctx context.Context, c *Client, path []string) (protocol.ServerMessage[protocol.DirectoryTree], error) {
	return Perform[struct{}, protocol.DirectoryTree](ctx, c, protocol.VerbList, path, struct{}{})
}

// Get fetches the resource at path. Requires READ permission.
func Get[R any](ctx context.Context, c *Client, path []string) (protocol.ServerMessage[R], error) {
	return Perform[struct{}, R](ctx, c, protocol.VerbGet, path, struct{}{})
}

// Link links srcPath to destPath.
func Link(ctx context.Context, c *Client, srcPath, destPath []string) (protocol.ServerMessage[struct{}], error) {
	return Perform[[]string, struct{}](ctx, c, protocol.VerbLink, destPath, srcPath)
}

// Unlink unlinks srcPath from destPath.
func Unlink(ctx context.Context, c *Client, srcPath, destPath []string) (protocol.ServerMessage[struct{}], error) {
	return Perform[[]string, struct{}](ctx, c, protocol.VerbUnlink, destPath, srcPath)
}

// PutModel replaces the user's model with the given frame or legacy input
// event.
func PutModel(ctx context.Context, c *Client, model protocol.Model) (protocol.ServerMessage[struct{}], error) {
	return Put(ctx, c, modelPath(c), model)
}

// StreamModel requests a stream of events (frames and legacy input events)
// for the user's model.
func StreamModel(ctx context.Context, c *Client) (*Stream[protocol.Model], error) {
	return StreamRequest[struct{}, protocol.Model](ctx, c, modelPath(c), struct{}{})
}

// PutInput sends a single input event for the user's model.
func PutInput(ctx context.Context, c *Client, event input.InputEvent) (protocol.ServerMessage[struct{}], error) {
	return Put(ctx, c, inputPath(c), event)
}

// StreamInput requests a stream of input events for the user's model. The
// first message is always a persisted-state snapshot and is unconditionally
// skipped before the stream is returned.
func StreamInput(ctx context.Context, c *Client) (*Stream[input.InputEvent], error) {
	s, err := StreamRequest[struct{}, input.InputEvent](ctx, c, inputPath(c), struct{}{})
	if err != nil {
		return nil, err
	}
	if _, err := s.Next(ctx); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

// GetLaserMetrics fetches lamp/controller metrics.
func GetLaserMetrics(ctx context.Context, c *Client) (protocol.ServerMessage[protocol.LaserMetrics], error) {
	return Get[protocol.LaserMetrics](ctx, c, []string{"metrics", "laser"})
}

func modelPath(c *Client) []string {
	return []string{"user", c.auth.Username, "model"}
}

func inputPath(c *Client) []string {
	return []string{"user", c.auth.Username, "input"}
}

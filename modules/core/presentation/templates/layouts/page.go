package layouts

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Page wraps content in the Base layout.
func Page(props *BaseProps, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return Base(props).Render(templ.WithChildren(ctx, content), w)
	})
}

package preview

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"

	"zonelight/refactor/internal/indicator"
)

// pageData is everything the strip page shows.
type pageData struct {
	State    indicator.State
	ZoneFile string
	Problem  string
}

// stripPage renders the strip as four coloured dots plus a status line.
func stripPage(d pageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<!doctype html><html><head><meta charset="utf-8"><title>zonelight</title>`+
			`<meta http-equiv="refresh" content="2">`+
			`<style>body{font-family:sans-serif;background:#111;color:#ddd}`+
			`.px{display:inline-block;width:48px;height:48px;border-radius:50%;margin:8px;border:1px solid #444}</style>`+
			`</head><body><h1>zonelight</h1><div class="strip">`); err != nil {
			return err
		}
		for i, c := range d.State.Pixels {
			if _, err := fmt.Fprintf(w, `<span class="px" title="pixel %d %s" style="background:%s"></span>`,
				i, templ.EscapeString(c.Hex()), templ.EscapeString(c.Hex())); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		if err := statusLine(d).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func statusLine(d pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		var msg string
		switch {
		case d.State.Fallback:
			msg = "fallback: " + d.Problem
		case d.State.Corner < 0:
			msg = "no corner set"
		default:
			arena := d.State.Arena
			if arena == "" {
				arena = "A+B"
			}
			msg = fmt.Sprintf("corner %d, arena %s", d.State.Corner, arena)
		}
		_, err := fmt.Fprintf(w, `<p class="status">%s</p><p class="meta">%s &middot; updated %s</p>`,
			templ.EscapeString(msg),
			templ.EscapeString(d.ZoneFile),
			templ.EscapeString(d.State.Updated.Format(time.RFC3339)))
		return err
	})
}

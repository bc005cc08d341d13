package discord

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/render/ascii"
)

// Discord rejects message content longer than this
const messageLimit = 2000

func summarize(l *layout.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**Layout** `%s`\n", l.ID)
	fmt.Fprintf(&b, "%d rooms, %d corridors, seed %d", l.RoomCount(), l.CorridorCount(), l.Seed)
	if l.Truncated {
		fmt.Fprintf(&b, "\n⚠️ Growth stopped at %d of %d rooms: no room had a free side", l.RoomCount(), l.Config.MaxRooms)
	}
	return b.String()
}

func formatLayout(ctx context.Context, l *layout.Layout, scale float64) string {
	summary := summarize(l)

	drawing, err := ascii.RenderLayout(ctx, l, scale)
	if err != nil {
		log.Printf("Layout %s could not be drawn: %v", l.ID, err)
		return summary + "\n_(map too large to draw)_"
	}

	content := summary + "\n```\n" + drawing + "\n```"
	if len(content) > messageLimit {
		return summary + "\n_(map too large to post, try fewer or smaller rooms)_"
	}
	return content
}

func formatList(all []*layout.Layout) string {
	if len(all) == 0 {
		return "No layouts stored yet. Try `/layout generate`."
	}

	var b strings.Builder
	b.WriteString("**Stored layouts**")
	for _, l := range all {
		line := fmt.Sprintf("\n`%s` %d rooms, seed %d", l.ID, l.RoomCount(), l.Seed)
		if b.Len()+len(line) > messageLimit-20 {
			b.WriteString("\n…")
			break
		}
		b.WriteString(line)
	}
	return b.String()
}

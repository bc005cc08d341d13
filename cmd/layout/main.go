package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"golang.org/x/term"

	"github.com/KirkDiggler/dungeon-layout/internal/config"
	"github.com/KirkDiggler/dungeon-layout/internal/dice"
	"github.com/KirkDiggler/dungeon-layout/internal/domain/layout"
	"github.com/KirkDiggler/dungeon-layout/internal/events"
	"github.com/KirkDiggler/dungeon-layout/internal/generator"
	"github.com/KirkDiggler/dungeon-layout/internal/render/ascii"
	"github.com/KirkDiggler/dungeon-layout/internal/repositories/layouts"
	"github.com/KirkDiggler/dungeon-layout/internal/uuid"
)

func main() {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	params := cfg.Generation.Layout.Clone()

	flag.IntVar(&params.MaxRooms, "rooms", params.MaxRooms, "number of rooms to grow")
	flag.IntVar(&params.WidthMin, "width-min", params.WidthMin, "smallest room width")
	flag.IntVar(&params.WidthMax, "width-max", params.WidthMax, "largest room width")
	flag.IntVar(&params.HeightMin, "height-min", params.HeightMin, "smallest room height")
	flag.IntVar(&params.HeightMax, "height-max", params.HeightMax, "largest room height")
	flag.BoolVar(&params.Branching, "branching", params.Branching, "grow from any room rather than only the newest")
	seed := flag.Int64("seed", 0, "random seed (0 picks one)")
	runs := flag.Int("runs", 1, "generate this many layouts in a row on the same canvas")
	scale := flag.Float64("scale", 1, "characters per layout unit")
	noColor := flag.Bool("no-color", false, "disable colored output")
	verbose := flag.Bool("v", false, "log every room and corridor as it is created")
	save := flag.Bool("save", false, "store the final layout in Redis")
	id := flag.String("id", "", "ID for the saved layout (random if empty)")
	flag.Parse()

	if *seed == 0 {
		*seed = dice.NewSeed()
	}

	bus := events.NewBus()
	if *verbose {
		bus.SubscribeAll(&events.ListenerFunc{
			Name:     "cli-trace",
			Callback: traceEvent,
		})
	}

	canvas := ascii.NewCanvas(*scale)
	g := generator.NewGenerator(&generator.Config{
		Roller:      dice.NewRandomRoller(*seed),
		Renderer:    canvas,
		EventBus:    bus,
		RetryBudget: cfg.Generation.RetryBudget,
	})
	if err := g.Configure(params); err != nil {
		log.Fatalf("Invalid generation settings: %v", err)
	}

	ctx := context.Background()
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	palette := ascii.DefaultPalette()

	var last *layout.Layout
	for run := 1; run <= *runs; run++ {
		l, err := g.Generate(ctx)
		if err != nil {
			log.Fatalf("Generation failed on run %d: %v", run, err)
		}
		l.Seed = *seed
		last = l

		drawing, err := canvas.Render()
		if err != nil {
			log.Fatalf("Failed to draw layout: %v", err)
		}

		if interactive {
			warnIfTooWide(drawing)
			if !*noColor {
				drawing = palette.Apply(drawing)
			}
		}

		if *runs > 1 {
			fmt.Printf("Run %d of %d\n", run, *runs)
		}
		fmt.Println(drawing)
		fmt.Printf("%d rooms, %d corridors, %d live shapes on canvas\n", l.RoomCount(), l.CorridorCount(), canvas.Live())
		if l.Truncated {
			fmt.Printf("Growth stopped early at %d of %d rooms\n", l.RoomCount(), params.MaxRooms)
		}
	}
	fmt.Printf("Seed: %d\n", *seed)

	if *save && last != nil {
		if err := saveLayout(ctx, cfg, last, *id); err != nil {
			log.Fatalf("Failed to save layout: %v", err)
		}
	}
}

func traceEvent(event events.Event) error {
	switch e := event.(type) {
	case *events.RoomCreatedEvent:
		log.Printf("%s at (%.1f, %.1f) %gx%g", e.Room.Name, e.Room.X, e.Room.Y, e.Room.Width, e.Room.Height)
	case *events.CorridorCreatedEvent:
		log.Printf("%s heading %s from room %d", e.Corridor.Name, e.Corridor.Direction, e.Corridor.StartingRoomIndex+1)
	case *events.LayoutResetEvent:
		if e.Released > 0 {
			log.Printf("Released %d shapes from the previous run", e.Released)
		}
	}
	return nil
}

func warnIfTooWide(drawing string) {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}

	widest := 0
	for _, line := range strings.Split(drawing, "\n") {
		widest = max(widest, len(line))
	}
	if widest > width {
		log.Printf("Map is %d columns wide but the terminal has %d; try a smaller -scale", widest, width)
	}
}

func saveLayout(ctx context.Context, cfg *config.Config, l *layout.Layout, id string) error {
	opts, err := cfg.Redis.Options()
	if err != nil {
		return err
	}

	client := redis.NewClient(opts)
	defer client.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("redis at %s is unreachable: %w", opts.Addr, err)
	}

	var ids uuid.Generator = uuid.NewGoogleUUIDGenerator()
	if id != "" {
		ids = uuid.NewSequence(id)
	}
	l.ID = ids.New()

	repo := layouts.NewRedisRepository(&layouts.RedisRepoConfig{Client: client})
	if err := repo.Create(ctx, l); err != nil {
		return err
	}

	log.Printf("Saved layout %s", l.ID)
	return nil
}

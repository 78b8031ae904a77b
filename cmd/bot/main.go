package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/crewcall-bot/crewcall/internal/codegen"
	"github.com/crewcall-bot/crewcall/internal/common/clock"
	"github.com/crewcall-bot/crewcall/internal/common/uuid"
	"github.com/crewcall-bot/crewcall/internal/config"
	"github.com/crewcall-bot/crewcall/internal/handlers/discord"
	"github.com/crewcall-bot/crewcall/internal/notify"
	"github.com/crewcall-bot/crewcall/internal/registry"
	"github.com/crewcall-bot/crewcall/internal/store"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	snapshotStore, err := newStore(cfg)
	if err != nil {
		log.Fatalf("Failed to create snapshot store: %v", err)
	}

	// Initialize the Discord session; the sink and the bot share it
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		log.Fatalf("Failed to create Discord session: %v", err)
	}

	sink, err := notify.NewDiscord(&notify.Config{
		Session: session,
	})
	if err != nil {
		log.Fatalf("Failed to create notification sink: %v", err)
	}

	reg, err := registry.New(&registry.Config{
		Store: snapshotStore,
		Generator: codegen.New(&codegen.Config{
			Length:      cfg.CodeLength,
			MaxAttempts: cfg.MaxCodeAttempts,
		}),
		Clock:         &clock.DefaultClock{},
		UUIDGenerator: uuid.New(),
		Sink:          sink,
	})
	if err != nil {
		log.Fatalf("Failed to create registry: %v", err)
	}

	// Load persisted state before accepting any events. A corrupt
	// snapshot stops the process; guessing at state is not an option.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	reloaded, err := reg.Reload(ctx, &registry.ReloadInput{})
	if err != nil {
		log.Fatalf("Failed to load registry state: %v", err)
	}
	if reloaded.FirstRun {
		log.Println("No saved state found, initialized empty registry")
	}

	bot, err := discord.New(&discord.Config{
		Session:       session,
		Registry:      reg,
		Sink:          sink,
		CommandPrefix: cfg.CommandPrefix,
	})
	if err != nil {
		log.Fatalf("Failed to create Discord bot: %v", err)
	}

	if err := bot.Start(); err != nil {
		log.Fatalf("Failed to start Discord bot: %v", err)
	}

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	if err := bot.Stop(); err != nil {
		log.Printf("Error stopping bot: %v", err)
	}

	log.Println("Bot has been shut down")
}

// newStore builds the configured snapshot store backend
func newStore(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreBackend {
	case "redis":
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		return store.NewRedis(&store.RedisConfig{
			RedisClient: redisClient,
		})
	default:
		return store.NewFile(&store.FileConfig{
			Path: cfg.StatePath,
		})
	}
}

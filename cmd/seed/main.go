// Command seed fills the configured database with demo users, profiles and posts.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"devconnector/internal/auth"
	"devconnector/internal/config"
	"devconnector/internal/database"
	"devconnector/internal/seed"

	"github.com/jessevdk/go-flags"
)

// nolint:lll,gochecknoglobals
var opts = struct {
	Users       int   `long:"users" env:"SEED_USERS" default:"20" description:"number of users to create"`
	Posts       int   `long:"posts" env:"SEED_POSTS" default:"60" description:"number of posts to create"`
	MaxLikes    int   `long:"max-likes" env:"SEED_MAX_LIKES" default:"10" description:"upper bound of likes per post"`
	MaxComments int   `long:"max-comments" env:"SEED_MAX_COMMENTS" default:"4" description:"upper bound of comments per post"`
	Clean       bool  `long:"clean" env:"SEED_CLEAN" description:"delete all users, profiles and posts before seeding"`
	Seed        int64 `long:"seed" env:"SEED_RANDOM" description:"random seed, 0 picks one from the clock"`
}{}

func main() {
	parser := flags.NewParser(&opts, flags.Default)
	parser.ShortDescription = "DevConnector seeder"

	if _, err := parser.Parse(); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatalf("Failed to parse flags: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() { _ = database.Close(db) }()

	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	log.Printf("Target: %d users, %d posts, clean=%v, seed=%d", opts.Users, opts.Posts, opts.Clean, opts.Seed)

	ctx := context.Background()
	s := seed.NewSeeder(db, auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry), opts.Seed)

	if opts.Clean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	err = s.Run(ctx, seed.Options{
		Users:              opts.Users,
		Posts:              opts.Posts,
		MaxLikesPerPost:    opts.MaxLikes,
		MaxCommentsPerPost: opts.MaxComments,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done. All seeded users have the password: %s", seed.DefaultPassword)
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/inkfarer/Tableturfer/engine"
	"github.com/inkfarer/Tableturfer/internal/catalog"
	"github.com/inkfarer/Tableturfer/internal/config"
	"github.com/inkfarer/Tableturfer/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("could not load configuration")
	}
	logrus.SetLevel(cfg.LogLevel)
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	// Opening a new room makes us the alpha player; joining an existing
	// one, the bravo player.
	team := engine.TeamAlpha
	if cfg.RoomCode != "" {
		team = engine.TeamBravo
	}

	session := engine.NewGameSession(team, catalog.NewCards(), catalog.NewMaps())
	session.BoardFlipped = cfg.BoardFlipped
	if err := session.SetDeck(team, catalog.DefaultDeckCards, uint64(time.Now().UnixNano())); err != nil {
		logrus.WithError(err).Fatal("could not set up the deck")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := transport.Dial(ctx, cfg.ServerURL, cfg.RoomCode)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to the server")
	}
	defer client.Close()

	if err := client.SetDeck(ctx, session.Decks[team].Cards); err != nil {
		logrus.WithError(err).Fatal("could not submit the deck")
	}

	logrus.WithFields(logrus.Fields{
		"server": cfg.ServerURL,
		"team":   team,
	}).Info("connected")

	handler := transport.NewHandler(session)
	if err := client.Listen(ctx, handler); err != nil {
		logrus.WithError(err).Fatal("connection lost")
	}

	score := session.Score()
	logrus.WithFields(logrus.Fields{
		"alpha": score[engine.TeamAlpha],
		"bravo": score[engine.TeamBravo],
	}).Info("disconnected")
}

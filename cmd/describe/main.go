package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"

	"github.com/Jamolkhon5/museum/internal/client"
	"github.com/Jamolkhon5/museum/internal/logger"
	"github.com/Jamolkhon5/museum/internal/workflow"
)

type Config struct {
	GatewayURL string        `env:"GATEWAY_URL" envDefault:"http://localhost:5641"`
	Token      string        `env:"MUSEUM_TOKEN"`
	Language   string        `env:"MUSEUM_LANG" envDefault:"en"`
	Timeout    time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"60s"`
	LogLevel   string        `env:"LOG_LEVEL" envDefault:"warn"`
}

func main() {
	var (
		listID   = flag.String("list", "", "ID of the list or editorial collection to describe")
		itemID   = flag.String("item", "", "ID of the item to describe")
		showHelp = flag.Bool("help", false, "Show help")
	)
	flag.Parse()

	if *showHelp || (*listID == "") == (*itemID == "") {
		fmt.Println("Description generator")
		fmt.Println("Usage: describe -list <id> | -item <id>")
		fmt.Println("")
		fmt.Println("Options:")
		flag.PrintDefaults()
		if !*showHelp {
			os.Exit(2)
		}
		return
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	c := client.New(cfg.GatewayURL, cfg.Timeout).WithToken(cfg.Token)

	target, err := loadTarget(ctx, c, *listID, *itemID)
	if err != nil {
		log.Fatalf("Failed to load %s: %v", target.kind, err)
	}

	messages := workflow.Catalog(cfg.Language)
	session := workflow.NewSession(target.form, c, &terminalNotifier{out: os.Stdout, errOut: os.Stderr},
		messages, logger.NewWithWriter(os.Stderr, cfg.LogLevel, "text"))
	defer session.Close()

	go func() {
		<-ctx.Done()
		session.Close()
	}()

	if err := run(ctx, session, os.Stdin, os.Stdout, target.save); err != nil && !errors.Is(err, workflow.ErrClosed) {
		log.Fatal(err)
	}
}

type target struct {
	kind string
	form workflow.Form
	save func(ctx context.Context, description string) error
}

func loadTarget(ctx context.Context, c *client.Client, listID, itemID string) (target, error) {
	if listID != "" {
		t := target{kind: "list"}
		id, err := uuid.Parse(listID)
		if err != nil {
			return t, err
		}
		list, err := c.FetchList(ctx, id)
		if err != nil {
			return t, err
		}
		t.form = workflow.CollectionFormFrom(list)
		t.save = func(ctx context.Context, description string) error {
			_, err := c.UpdateListDescription(ctx, id, description)
			return err
		}
		return t, nil
	}

	t := target{kind: "item"}
	id, err := uuid.Parse(itemID)
	if err != nil {
		return t, err
	}
	item, err := c.FetchItem(ctx, id)
	if err != nil {
		return t, err
	}
	t.form = workflow.ItemFormFrom(item)
	t.save = func(ctx context.Context, description string) error {
		_, err := c.UpdateItemDescription(ctx, id, description)
		return err
	}
	return t, nil
}

// run ведет диалог подтверждения: a принимает текст, r генерирует заново, d закрывает диалог.
func run(ctx context.Context, session *workflow.Session, in io.Reader, out io.Writer, save func(context.Context, string) error) error {
	text, err := session.Generate(ctx)
	if err != nil {
		// уведомление об ошибке уже показано
		return nil
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "\n%s\n\n[a]ccept / [r]egenerate / [d]ismiss: ", text)
		if !scanner.Scan() {
			return session.Dismiss()
		}

		switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
		case "a", "accept":
			description, err := session.Accept()
			if err != nil {
				return err
			}
			return save(ctx, description)
		case "r", "regenerate":
			text, err = session.Regenerate(ctx)
			if err != nil {
				return nil
			}
		case "d", "dismiss":
			return session.Dismiss()
		}
	}
}

type terminalNotifier struct {
	out    io.Writer
	errOut io.Writer
}

func (n *terminalNotifier) ShowSuccess(message string) {
	fmt.Fprintln(n.out, message)
}

func (n *terminalNotifier) ShowError(message string) {
	fmt.Fprintln(n.errOut, message)
}

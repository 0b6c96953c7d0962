// lighthouse-cli is a small example client: connect, and either fetch a
// path, push a solid-color frame to the user's model, or print a stream of
// input events until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/carlmjohnson/versioninfo"
	"github.com/katzenpost/lighthouse-go/lighthouse"
	"github.com/katzenpost/lighthouse-go/protocol"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (url/username/token)")
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(versioninfo.Short())
		return
	}

	cmd := flag.Arg(0)
	if cmd == "" {
		fmt.Fprintln(os.Stderr, "usage: lighthouse-cli [-config path] <get PATH... | put-model COLOR | stream-input>")
		os.Exit(2)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fatalf("loading config: %v", err)
	}
	if cfg.Username == "" || cfg.Token == "" {
		fatalf("missing username/token (set LIGHTHOUSE_USER/LIGHTHOUSE_TOKEN or pass -config)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var opts []lighthouse.Option
	if cfg.URL != "" {
		opts = append(opts, lighthouse.WithURL(cfg.URL))
	}
	auth := protocol.NewAuthentication(cfg.Username, cfg.Token)

	client, err := lighthouse.Connect(ctx, auth, opts...)
	if err != nil {
		fatalf("connect: %v", err)
	}
	defer client.Close()

	switch cmd {
	case "get":
		runGet(ctx, client, flag.Args()[1:])
	case "put-model":
		runPutModel(ctx, client, flag.Args()[1:])
	case "stream-input":
		runStreamInput(ctx, client)
	default:
		fatalf("unknown command %q", cmd)
	}
}

func runGet(ctx context.Context, client *lighthouse.Client, path []string) {
	resp, err := lighthouse.Get[dynamicPayload](ctx, client, path)
	if err != nil {
		fatalf("get %v: %v", path, err)
	}
	fmt.Printf("%+v\n", resp.Payload)
}

// dynamicPayload lets `get` print whatever shape the server returns,
// without the caller having to know the resource's schema ahead of time.
type dynamicPayload = interface{}

func runPutModel(ctx context.Context, client *lighthouse.Client, args []string) {
	color := protocol.White
	if len(args) > 0 {
		switch args[0] {
		case "red":
			color = protocol.Red
		case "green":
			color = protocol.Green
		case "blue":
			color = protocol.Blue
		case "black":
			color = protocol.Black
		}
	}
	if _, err := lighthouse.PutModel(ctx, client, protocol.ModelFromFrame(protocol.NewFrame(color))); err != nil {
		fatalf("put model: %v", err)
	}
}

func runStreamInput(ctx context.Context, client *lighthouse.Client) {
	stream, err := lighthouse.StreamInput(ctx, client)
	if err != nil {
		fatalf("stream input: %v", err)
	}
	defer stream.Close()

	for {
		msg, err := stream.Next(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "stream ended: %v\n", err)
			return
		}
		fmt.Printf("%+v\n", msg.Payload)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

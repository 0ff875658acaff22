package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/voxlabs/chirp/pkg/client"
)

func main() {
	urlFlag := flag.String("url", "http://localhost:5000", "server url")
	tokenFlag := flag.String("token", "", "server token")
	voiceFlag := flag.String("voice", "", "voice name")

	flag.Parse()

	ctx := context.Background()

	options := []client.RequestOption{}

	if *tokenFlag != "" {
		options = append(options, client.WithToken(*tokenFlag))
	}

	c := client.New(*urlFlag, options...)

	voices, err := c.Voices.List(ctx)

	if err == nil {
		fmt.Println("voices:", strings.Join(voices, ", "))
	}

	reader := bufio.NewReader(os.Stdin)

	for i := 0; ; i++ {
		fmt.Print(" >  ")

		line, err := reader.ReadString('\n')

		if err != nil {
			return
		}

		text := strings.TrimSpace(line)

		if text == "" {
			continue
		}

		synthesis, err := c.Syntheses.New(ctx, client.SynthesizeRequest{
			Text:  text,
			Voice: *voiceFlag,
		})

		if err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		name := fmt.Sprintf("tts_%d.wav", i)

		if err := os.WriteFile(name, synthesis.Content, 0o644); err != nil {
			fmt.Fprintln(os.Stderr, "error:", err)
			continue
		}

		fmt.Println("wrote", name)
	}
}

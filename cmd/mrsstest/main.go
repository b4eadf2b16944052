package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli"

	"github.com/dsh2dsh/mediarss"
	"github.com/dsh2dsh/mediarss/options"
)

func main() {
	app := cli.NewApp()
	app.Name = "mrsstest"
	app.Usage = "provide a feed entry file path or url to parse and print its media extension"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "strict,s",
			Usage: "only accept elements declared in the Media RSS namespace",
		},
	}
	app.Action = func(c *cli.Context) {
		if c.NArg() == 0 {
			fmt.Println("Missing entry path or url")
			os.Exit(1)
		}

		fc, err := fetchEntry(c.Args()[0])
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		opts := options.DefaultParseOptions()
		opts.StrictNamespace = c.Bool("strict")

		ext, err := mediarss.Parse(strings.NewReader(fc), opts)
		if err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}

		fmt.Println(ext)
	}
	app.Run(os.Args) //nolint:errcheck // exits on error anyway
}

func fetchEntry(loc string) (string, error) {
	if strings.HasPrefix(loc, "http") {
		return fetchURL(loc)
	}
	return fetchFile(loc)
}

func fetchFile(path string) (string, error) {
	f, err := os.ReadFile(path)
	return string(f), err
}

func fetchURL(url string) (string, error) {
	response, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("mrsstest: %w", err)
	}
	defer response.Body.Close()

	contents, err := io.ReadAll(response.Body)
	if err != nil {
		return "", fmt.Errorf("mrsstest: %w", err)
	}
	return string(contents), nil
}

package main

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strconv"

	"petbots.fbbdev.it/ttf2fnt/generate"
	"petbots.fbbdev.it/ttf2fnt/log"
	"petbots.fbbdev.it/ttf2fnt/publish"
	"petbots.fbbdev.it/ttf2fnt/raster"
)

var outDir string
var dpi string
var telegramToken string
var telegramChatID string

func init() {
	outDir = os.Getenv("TTF2FNT_OUT_DIR")
	if outDir == "" {
		outDir = "."
	}

	dpi = os.Getenv("TTF2FNT_DPI")
	if dpi == "" {
		dpi = strconv.Itoa(raster.DefaultDPI)
	}

	telegramToken = os.Getenv("TTF2FNT_TELEGRAM_TOKEN")
	telegramChatID = os.Getenv("TTF2FNT_TELEGRAM_CHAT_ID")
}

const usage = "usage: ttf2fnt <font path> <font size>"

var errNotEnoughArgs = errors.New(usage)
var errInvalidSize = errors.New("font size must be a positive number")
var errInvalidDPI = errors.New("TTF2FNT_DPI must be a positive number")
var errInvalidChatID = errors.New("TTF2FNT_TELEGRAM_CHAT_ID must be an integer")

func parseArgs(args []string) (generate.Config, error) {
	if len(args) < 3 {
		return generate.Config{}, errNotEnoughArgs
	}

	// single precision: the size is printed as a float32 in the file names
	size, err := strconv.ParseFloat(args[2], 32)
	if err != nil || !(size > 0) || math.IsInf(size, 0) {
		return generate.Config{}, fmt.Errorf("%w: %q", errInvalidSize, args[2])
	}

	res, err := strconv.ParseFloat(dpi, 64)
	if err != nil || !(res > 0) || math.IsInf(res, 0) {
		return generate.Config{}, fmt.Errorf("%w: %q", errInvalidDPI, dpi)
	}

	if err := (raster.Options{Size: size, DPI: res}).Validate(); err != nil {
		return generate.Config{}, fmt.Errorf("%w: %w", errInvalidSize, err)
	}

	fontPath, err := raster.Resolve(args[1])
	if err != nil {
		return generate.Config{}, err
	}

	return generate.Config{
		FontPath: fontPath,
		Size:     size,
		DPI:      res,
		OutDir:   outDir,
	}, nil
}

// publisher returns nil when Telegram publishing is not configured.
func publisher() (*publish.Telegram, error) {
	if telegramToken == "" || telegramChatID == "" {
		return nil, nil
	}

	chatID, err := strconv.ParseInt(telegramChatID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", errInvalidChatID, telegramChatID)
	}

	return &publish.Telegram{Token: telegramToken, ChatID: chatID}, nil
}

func run(args []string) error {
	cfg, err := parseArgs(args)
	if err != nil {
		return err
	}

	tg, err := publisher()
	if err != nil {
		return err
	}

	report, err := generate.Run(cfg)
	if err != nil {
		return err
	}

	if tg != nil {
		return tg.Send(report.Written()...)
	}

	return nil
}

func main() {
	if err := run(os.Args); err != nil {
		log.ErrorLogger.Print(err)
		log.FatalLogger.Fatal("font generation failed")
	}

	os.Exit(0)
}

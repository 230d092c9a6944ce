package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/govalues/decimal"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"

	"github.com/centwise/money"
	"github.com/centwise/money/codec"
)

const (
	success = 0
	failure = 1
)

const (
	formatJSON    = "json"
	formatCBORHex = "cbor-hex"
	formatZstdHex = "zstd-hex"
)

var errInvalidRatio = errors.New("invalid ratio")

type config struct {
	Amount   string   `validate:"required"`
	Currency string   `validate:"required"`
	Exponent int      `validate:"gte=-1,lte=19"`
	Ratios   []string `validate:"required,min=1"`
	Format   string   `validate:"oneof=json cbor-hex zstd-hex"`
	ISO      bool
}

type part struct {
	Key      string         `json:"key"`
	Amount   string         `json:"amount"`
	Currency money.Currency `json:"currency"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {

	// Command line parameter initialization.
	var (
		cfg       config
		flagLevel string
	)

	flags := pflag.NewFlagSet("allocate", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&cfg.Amount, "amount", "a", "", "total amount to allocate")
	flags.StringVarP(&cfg.Currency, "currency", "c", "", "currency code of the amount")
	flags.IntVarP(&cfg.Exponent, "exponent", "e", -1, "number of minor unit digits (-1 uses the registry default)")
	flags.StringArrayVarP(&cfg.Ratios, "ratio", "r", nil, "ratio as key=weight, may be repeated")
	flags.StringVarP(&cfg.Format, "format", "f", formatJSON, "output format (json, cbor-hex or zstd-hex)")
	flags.BoolVar(&cfg.ISO, "iso", false, "use ISO 4217 exponents for bare currency codes")
	flags.StringVarP(&flagLevel, "level", "l", "info", "log output level")

	err := flags.Parse(args)
	if err != nil {
		return failure
	}

	// Logger initialization.
	zerolog.TimestampFunc = func() time.Time { return time.Now().UTC() }
	log := zerolog.New(stderr).With().Timestamp().Logger().Level(zerolog.DebugLevel)
	level, err := zerolog.ParseLevel(flagLevel)
	if err != nil {
		log.Error().Str("level", flagLevel).Err(err).Msg("could not parse log level")
		return failure
	}
	log = log.Level(level)

	validate := validator.New()
	validate.RegisterStructValidation(validateRatios, config{})
	err = validate.Struct(cfg)
	if err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return failure
	}

	// Resolve the currency of the total.
	registry := money.NewRegistry()
	if cfg.ISO {
		registry = money.NewISORegistry()
	}
	var curr money.Currency
	if cfg.Exponent >= 0 {
		curr, err = registry.Intern(money.CurrencyDef{Code: cfg.Currency, Exponent: cfg.Exponent})
	} else {
		curr, err = registry.Lookup(cfg.Currency)
	}
	if err != nil {
		log.Error().Str("currency", cfg.Currency).Int("exponent", cfg.Exponent).Err(err).Msg("could not resolve currency")
		return failure
	}

	total, err := money.ParseAmountIn(curr, cfg.Amount)
	if err != nil {
		log.Error().Str("amount", cfg.Amount).Err(err).Msg("could not parse amount")
		return failure
	}

	ratios := make([]money.Ratio[string], 0, len(cfg.Ratios))
	for _, r := range cfg.Ratios {
		ratio, err := parseRatio(r)
		if err != nil {
			log.Error().Str("ratio", r).Err(err).Msg("could not parse ratio")
			return failure
		}
		ratios = append(ratios, ratio)
	}

	parts, err := money.AllocateByKey(total, ratios)
	if err != nil {
		log.Error().Err(err).Msg("could not allocate amount")
		return failure
	}

	log.Info().Str("total", total.String()).Int("parts", len(parts)).Msg("amount allocated")

	switch cfg.Format {
	case formatJSON:
		err = writeJSON(stdout, ratios, parts)
	case formatCBORHex:
		var data []byte
		data, err = codec.NewCodec().EncodeAllocation(parts)
		if err == nil {
			_, err = fmt.Fprintln(stdout, hex.EncodeToString(data))
		}
	case formatZstdHex:
		var data []byte
		data, err = codec.NewCodec().MarshalAllocation(parts)
		if err == nil {
			_, err = fmt.Fprintln(stdout, hex.EncodeToString(data))
		}
	}
	if err != nil {
		log.Error().Str("format", cfg.Format).Err(err).Msg("could not write allocation")
		return failure
	}

	return success
}

// validateRatios checks that every ratio has the form key=weight.
func validateRatios(sl validator.StructLevel) {
	cfg := sl.Current().Interface().(config)
	for i, r := range cfg.Ratios {
		key, _, ok := strings.Cut(r, "=")
		if !ok || key == "" {
			sl.ReportError(r, fmt.Sprintf("Ratios[%d]", i), "Ratios", "ratio", "")
		}
	}
}

// parseRatio parses a ratio of the form key=weight.
func parseRatio(s string) (money.Ratio[string], error) {
	key, weight, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return money.Ratio[string]{}, fmt.Errorf("%w: expected key=weight, got %q", errInvalidRatio, s)
	}
	w, err := decimal.Parse(weight)
	if err != nil {
		return money.Ratio[string]{}, fmt.Errorf("%w: %w", errInvalidRatio, err)
	}
	return money.Ratio[string]{Key: key, Weight: w}, nil
}

// writeJSON writes one JSON object per part, in the order of the ratios.
func writeJSON(w io.Writer, ratios []money.Ratio[string], parts map[string]money.Amount) error {
	enc := json.NewEncoder(w)
	for _, r := range ratios {
		a := parts[r.Key]
		err := enc.Encode(part{
			Key:      r.Key,
			Amount:   a.Decimal().String(),
			Currency: a.Curr(),
		})
		if err != nil {
			return err
		}
	}
	return nil
}

package main

import (
	"encoding/json"
	"os"

	"github.com/mwildt/twokey/base"
	"github.com/mwildt/twokey/codecs"
	"github.com/mwildt/twokey/twokeymap"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type record = base.Entry[string, string, json.RawMessage]

type store = twokeymap.Container[string, string, json.RawMessage]

type loadOptions struct {
	encoding string
	sorted   bool
	strict   bool
}

func newStore(sorted bool) store {
	if sorted {
		return twokeymap.NewSorted[string, string, json.RawMessage]()
	}
	return twokeymap.New[string, string, json.RawMessage]()
}

// loadFile reads all records of filename into a new store. Records repeating a
// key pair fail the load in strict mode and are skipped otherwise.
func loadFile(filename string, options loadOptions, logger *zap.SugaredLogger) (store, error) {
	codec, err := codecs.ByName[record](options.encoding)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	logger = logger.With("file", filename)
	target := newStore(options.sorted)
	skipped := 0
	count, err := codecs.ReadLines(file, codec, func(line int, r record) error {
		err := target.Insert(r.Key1, r.Key2, r.Value)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, twokeymap.ErrDuplicateKey) && !options.strict:
			logger.Warnw("skipping duplicate record", "line", line, "key1", r.Key1, "key2", r.Key2)
			skipped++
			return nil
		default:
			return errors.Wrapf(err, "%s:%d", filename, line)
		}
	})
	if err != nil {
		return nil, err
	}
	logger.Debugw("records loaded", "records", count, "entries", target.Len(), "skipped", skipped)
	return target, nil
}

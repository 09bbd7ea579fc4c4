package codecs

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

const maxLineSize = 1024 * 1024

// LineConsumer receives every decoded record together with its 1-based line number.
type LineConsumer[T any] func(line int, value T) error

// ReadLines decodes newline delimited records from reader. Blank lines are skipped.
// Reading stops at the first decode or consumer error.
func ReadLines[T any](reader io.Reader, codec Codec[T], consumer LineConsumer[T]) (count int, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	line := 0
	for scanner.Scan() {
		line++
		data := bytes.TrimSpace(scanner.Bytes())
		if len(data) == 0 {
			continue
		}
		value, err := codec.Decode(data)
		if err != nil {
			return count, fmt.Errorf("line %d: %w", line, err)
		}
		if err := consumer(line, value); err != nil {
			return count, err
		}
		count++
	}
	return count, scanner.Err()
}

// WriteLine encodes value and writes it followed by a newline.
func WriteLine[T any](writer io.Writer, codec Codec[T], value T) error {
	data, err := codec.Encode(value)
	if err != nil {
		return err
	}
	if _, err := writer.Write(append(data, '\n')); err != nil {
		return err
	}
	return nil
}

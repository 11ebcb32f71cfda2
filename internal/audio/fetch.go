package audio

import (
	"bytes"
	"context"
	"crypto"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	goupdate "github.com/doitdistributed/go-update"

	"github.com/oshokin/alarm-clock/internal/config"
	"github.com/oshokin/alarm-clock/internal/logger"

	// Ensure SHA512 available for checksum verification.
	_ "crypto/sha512"
)

// maxToneSize caps downloads.
const maxToneSize = 32 << 20

var (
	errBadHTTPStatus = errors.New("unexpected HTTP status")
	errToneTooLarge  = errors.New("tone file is too large")
)

// Fetch downloads a WAV file from rawURL and atomically replaces path with it.
// When checksum is non-empty it is the base64 SHA-512 of the file and the
// install is refused on mismatch.
func Fetch(ctx context.Context, client *http.Client, rawURL, path, checksum string) error {
	if client == nil {
		client = http.DefaultClient
	}

	var (
		sum []byte
		err error
	)

	if checksum != "" {
		if sum, err = base64.StdEncoding.DecodeString(checksum); err != nil {
			return fmt.Errorf("decode checksum: %w", err)
		}
	}

	data, err := download(ctx, client, rawURL)
	if err != nil {
		return err
	}

	if _, _, err = parseWAV(data); err != nil {
		return fmt.Errorf("downloaded tone: %w", err)
	}

	path = filepath.Clean(path)

	// go-update swaps files, so the target must exist.
	if _, err = os.Stat(path); err != nil && os.IsNotExist(err) {
		file, createErr := os.Create(path)
		if createErr != nil {
			return createErr
		}

		_ = file.Close()
	}

	options := goupdate.Options{
		TargetPath: path,
		TargetMode: config.DefaultFilePermissions,
		Checksum:   sum,
		Hash:       crypto.SHA512,
	}

	if err = goupdate.Apply(bytes.NewReader(data), options); err != nil {
		return fmt.Errorf("install tone: %w", err)
	}

	logger.InfoKV(ctx, "Tone installed", "file", path, "bytes", len(data))

	return nil
}

func download(ctx context.Context, client *http.Client, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, http.NoBody)
	if err != nil {
		return nil, err
	}

	response, err := client.Do(req)
	if err != nil {
		return nil, err
	}

	defer func() {
		_ = response.Body.Close()
	}()

	if response.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s, %s: %w", rawURL, response.Status, errBadHTTPStatus)
	}

	data, err := io.ReadAll(io.LimitReader(response.Body, maxToneSize+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if len(data) > maxToneSize {
		return nil, errToneTooLarge
	}

	return data, nil
}

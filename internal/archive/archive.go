// Package archive writes and reads generated levels as compressed
// snapshot files. A file is a zstd stream holding one JSON header line
// followed by a gob-encoded body, so tools can sniff a level's identity
// without decoding the grids.
package archive

import (
	"bufio"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"

	"cavegen/pkg/level"
)

// Version is bumped whenever the body layout changes.
const Version = 1

// Header is the uncompressed-readable identity of an archived level.
type Header struct {
	Version int    `json:"version"`
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Seed    int64  `json:"seed"`
	Biome   string `json:"biome"`
}

// Level is the archived body: the full generation output plus the
// options that produced it, so a run can be reproduced from its file.
type Level struct {
	Header Header

	Options   level.Options
	Tiles     *level.TileGrid
	Height    *level.HeightField
	Terrain   level.TerrainStats
	Resources *level.ResourceMap
}

// Build assembles an archive body from one generation run.
func Build(o level.Options, res *level.GenerationResult, rm *level.ResourceMap) Level {
	return Level{
		Header: Header{
			Version: Version,
			Width:   o.Width,
			Height:  o.Height,
			Seed:    o.Seed,
			Biome:   o.Biome.String(),
		},
		Options:   o,
		Tiles:     res.Tiles,
		Height:    res.Height,
		Terrain:   res.Stats,
		Resources: rm,
	}
}

// Write stores the level at path, creating parent directories as needed.
func Write(path string, lv Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return err
	}
	defer enc.Close()

	bw := bufio.NewWriterSize(enc, 64*1024)
	defer bw.Flush()

	hb, _ := json.Marshal(lv.Header)
	if _, err := bw.Write(hb); err != nil {
		return err
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}

	if err := gob.NewEncoder(bw).Encode(&lv); err != nil {
		return fmt.Errorf("gob encode: %w", err)
	}
	return nil
}

// Read loads a level archive written by Write.
func Read(path string) (Level, error) {
	var lv Level
	f, err := os.Open(path)
	if err != nil {
		return lv, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return lv, err
	}
	defer dec.Close()

	br := bufio.NewReaderSize(dec, 64*1024)

	// Skip the header line; the gob body carries the header too.
	if _, err := br.ReadBytes('\n'); err != nil {
		return lv, fmt.Errorf("read header: %w", err)
	}

	if err := gob.NewDecoder(br).Decode(&lv); err != nil {
		return lv, fmt.Errorf("gob decode: %w", err)
	}
	if lv.Header.Version != Version {
		return lv, fmt.Errorf("unsupported archive version %d", lv.Header.Version)
	}
	return lv, nil
}

// ReadHeader decodes only the JSON header line, leaving the grids
// compressed.
func ReadHeader(path string) (Header, error) {
	var h Header
	f, err := os.Open(path)
	if err != nil {
		return h, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return h, err
	}
	defer dec.Close()

	line, err := bufio.NewReaderSize(dec, 4*1024).ReadBytes('\n')
	if err != nil {
		return h, fmt.Errorf("read header: %w", err)
	}
	if err := json.Unmarshal(line, &h); err != nil {
		return h, fmt.Errorf("decode header: %w", err)
	}
	return h, nil
}

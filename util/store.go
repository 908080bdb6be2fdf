// util/store.go
// Copyright(c) 2025 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/zstd"
	"github.com/vmihailenco/msgpack/v5"
)

// StoreObject msgpack-encodes obj and writes it to w, zstd-compressed.
func StoreObject(w io.Writer, obj any) error {
	zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}

	if err := msgpack.NewEncoder(zw).Encode(obj); err != nil {
		zw.Close()
		return fmt.Errorf("msgpack encode: %w", err)
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to close zstd writer: %w", err)
	}
	return nil
}

// RetrieveObject decodes an object written by StoreObject from r into
// obj, which must be a pointer.
func RetrieveObject(r io.Reader, obj any) error {
	zr, err := zstd.NewReader(r)
	if err != nil {
		return fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer zr.Close()

	if err := msgpack.NewDecoder(zr).Decode(obj); err != nil {
		return fmt.Errorf("msgpack decode: %w", err)
	}
	return nil
}

// StoreObjectFile writes obj to the file at path using StoreObject,
// creating parent directories as needed. The file is written to a
// temporary name and renamed into place so that readers never see a
// partial file.
func StoreObjectFile(path string, obj any) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if err := StoreObject(f, obj); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, path)
}

// RetrieveObjectFile reads an object written by StoreObjectFile.
func RetrieveObjectFile(path string, obj any) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := RetrieveObject(f, obj); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}

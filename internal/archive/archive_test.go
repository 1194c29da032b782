package archive

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/FocuswithJustin/BabelVault/core/coord"
	"github.com/FocuswithJustin/BabelVault/core/vault"
)

func testRecord() *vault.Record {
	return &vault.Record{
		Extension: "txt",
		Size:      42,
		Addresses: []coord.Address{
			{Hex: big.NewInt(123456789), Wall: 1, Shelf: 2, Volume: 3, Page: 4},
			{Hex: big.NewInt(0)},
		},
	}
}

func assertRecordsEqual(t *testing.T, got, want *vault.Record) {
	t.Helper()
	if got.Extension != want.Extension || got.Size != want.Size {
		t.Errorf("header = (%q, %d), want (%q, %d)", got.Extension, got.Size, want.Extension, want.Size)
	}
	if len(got.Addresses) != len(want.Addresses) {
		t.Fatalf("address count = %d, want %d", len(got.Addresses), len(want.Addresses))
	}
	for i := range want.Addresses {
		if !got.Addresses[i].Equal(want.Addresses[i]) {
			t.Errorf("address %d = %s, want %s", i, got.Addresses[i], want.Addresses[i])
		}
	}
}

func TestWriteReadPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.babel")
	rec := testRecord()

	if err := Write(path, rec, nil); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	compression, err := DetectCompression(path)
	if err != nil {
		t.Fatalf("DetectCompression failed: %v", err)
	}
	if compression != CompressionNone {
		t.Errorf("compression = %q, want %q", compression, CompressionNone)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	assertRecordsEqual(t, got, rec)
}

func TestWriteReadXZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.babel")
	rec := testRecord()

	if err := Write(path, rec, &WriteOptions{Compression: CompressionXZ}); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	compression, err := DetectCompression(path)
	if err != nil {
		t.Fatalf("DetectCompression failed: %v", err)
	}
	if compression != CompressionXZ {
		t.Errorf("compression = %q, want %q", compression, CompressionXZ)
	}

	got, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	assertRecordsEqual(t, got, rec)
}

func TestDetectCompressionShortFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.babel")
	if err := os.WriteFile(path, []byte("a"), 0644); err != nil {
		t.Fatal(err)
	}

	compression, err := DetectCompression(path)
	if err != nil {
		t.Fatalf("DetectCompression failed: %v", err)
	}
	if compression != CompressionNone {
		t.Errorf("compression = %q, want %q", compression, CompressionNone)
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "missing.babel")); err == nil {
		t.Error("Read of missing file should fail")
	}
}

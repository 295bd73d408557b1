// Package bundle moves a whole address book and note pad between machines as
// one gzipped tar file.
package bundle

import (
	"archive/tar"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/kokistudios/memomind/internal/contact"
	"github.com/kokistudios/memomind/internal/note"
	"github.com/kokistudios/memomind/internal/store"
)

const (
	// Ext is the bundle file extension.
	Ext = ".memomind"

	manifestName = "manifest.yaml"
	contactsName = "contacts.json"
	notesName    = "notes.json"
)

// Manifest describes the contents of a bundle.
type Manifest struct {
	Version    string    `yaml:"version"`
	ID         string    `yaml:"id"`
	ExportedAt time.Time `yaml:"exported_at"`
	Language   string    `yaml:"language"`
	Contacts   int       `yaml:"contacts"`
	Notes      int       `yaml:"notes"`
	Files      []string  `yaml:"files"`
}

// Export writes book and pad to a bundle and returns the file it wrote.
// An empty outputPath or a directory gets a dated default name; any other
// path gets the bundle extension when it lacks it.
func Export(cfg store.Config, book *contact.Book, pad *note.Pad, outputPath string, now time.Time) (string, error) {
	defaultName := "memomind-" + now.Format("20060102-150405") + Ext
	if outputPath == "" {
		outputPath = defaultName
	}
	if info, err := os.Stat(outputPath); err == nil && info.IsDir() {
		outputPath = filepath.Join(outputPath, defaultName)
	} else if !strings.HasSuffix(outputPath, Ext) {
		outputPath += Ext
	}

	var contacts, notes bytes.Buffer
	if err := store.EncodeBook(&contacts, book); err != nil {
		return "", fmt.Errorf("failed to encode contacts: %w", err)
	}
	if err := store.EncodePad(&notes, pad); err != nil {
		return "", fmt.Errorf("failed to encode notes: %w", err)
	}

	manifest := Manifest{
		Version:    "1",
		ID:         uuid.NewString(),
		ExportedAt: now.UTC(),
		Language:   cfg.Language,
		Contacts:   book.Len(),
		Notes:      pad.Len(),
		Files:      []string{contactsName, notesName},
	}
	manifestData, err := yaml.Marshal(manifest)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	outFile, err := os.Create(outputPath)
	if err != nil {
		return "", fmt.Errorf("failed to create output file: %w", err)
	}
	defer outFile.Close()

	gw := gzip.NewWriter(outFile)
	tw := tar.NewWriter(gw)

	entries := []struct {
		name string
		data []byte
	}{
		{manifestName, manifestData},
		{contactsName, contacts.Bytes()},
		{notesName, notes.Bytes()},
	}
	for _, e := range entries {
		header := &tar.Header{
			Name:    e.name,
			Size:    int64(len(e.data)),
			Mode:    0644,
			ModTime: now,
		}
		if err := tw.WriteHeader(header); err != nil {
			return "", fmt.Errorf("failed to write tar header: %w", err)
		}
		if _, err := tw.Write(e.data); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", e.name, err)
		}
	}

	if err := tw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish bundle: %w", err)
	}
	if err := gw.Close(); err != nil {
		return "", fmt.Errorf("failed to finish bundle: %w", err)
	}
	return outputPath, nil
}

// ImportResult contains information about a merged bundle.
type ImportResult struct {
	Manifest        Manifest
	ContactsAdded   int
	ContactsSkipped []string
	NotesAdded      int
	NotesSkipped    int
}

// Import merges a bundle into book and pad. Contacts whose name is already
// in the book and notes whose id is already in the pad are kept as they are.
// Nothing is merged when the bundle is unreadable.
func Import(bundlePath string, book *contact.Book, pad *note.Pad) (*ImportResult, error) {
	files, err := readAll(bundlePath)
	if err != nil {
		return nil, err
	}

	raw, ok := files[manifestName]
	if !ok {
		return nil, fmt.Errorf("invalid bundle: missing manifest")
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if manifest.ID == "" {
		return nil, fmt.Errorf("invalid bundle: empty manifest")
	}

	incomingBook, err := store.DecodeBook(bytes.NewReader(files[contactsName]))
	if err != nil {
		return nil, fmt.Errorf("invalid bundle contacts: %w", err)
	}
	incomingPad, err := store.DecodePad(bytes.NewReader(files[notesName]))
	if err != nil {
		return nil, fmt.Errorf("invalid bundle notes: %w", err)
	}

	result := &ImportResult{Manifest: manifest}
	for _, r := range incomingBook.Records() {
		name := r.Name().String()
		if book.Has(name) {
			result.ContactsSkipped = append(result.ContactsSkipped, name)
			continue
		}
		book.Add(r)
		result.ContactsAdded++
	}
	for _, n := range incomingPad.Notes() {
		if _, err := pad.Get(n.ID()); err == nil {
			result.NotesSkipped++
			continue
		}
		pad.Add(n)
		result.NotesAdded++
	}
	pad.Sort()
	return result, nil
}

// ReadManifest reads only the manifest from a bundle.
func ReadManifest(bundlePath string) (*Manifest, error) {
	files, err := readAll(bundlePath)
	if err != nil {
		return nil, err
	}
	raw, ok := files[manifestName]
	if !ok {
		return nil, fmt.Errorf("manifest not found in bundle")
	}
	var manifest Manifest
	if err := yaml.Unmarshal(raw, &manifest); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &manifest, nil
}

func readAll(bundlePath string) (map[string][]byte, error) {
	inFile, err := os.Open(bundlePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open bundle: %w", err)
	}
	defer inFile.Close()

	gr, err := gzip.NewReader(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read gzip: %w", err)
	}
	defer gr.Close()

	tr := tar.NewReader(gr)
	files := make(map[string][]byte)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read tar: %w", err)
		}
		switch header.Name {
		case manifestName, contactsName, notesName:
		default:
			continue
		}
		content, err := io.ReadAll(tr)
		if err != nil {
			return nil, fmt.Errorf("failed to read file %s: %w", header.Name, err)
		}
		files[header.Name] = content
	}
	return files, nil
}

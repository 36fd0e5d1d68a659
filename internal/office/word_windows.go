// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package office

import (
	"fmt"
	"runtime"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const wordProgID = "Word.Application"

// wdExportFormatPDF is the Word automation constant for fixed-format PDF
// export.
const wdExportFormatPDF = 17

// wordBackend drives the installed Microsoft Word application over COM.
// Each Convert call owns a fresh, invisible Word instance; the instance is
// quit and every interface released on all exit paths, so no background
// winword process outlives the attempt.
type wordBackend struct{}

func newWordBackend() Backend { return &wordBackend{} }

func (w *wordBackend) Name() string { return "word" }

func (w *wordBackend) Available() bool {
	_, err := ole.CLSIDFromProgID(wordProgID)
	return err == nil
}

func (w *wordBackend) Convert(input, output string) error {
	// The COM apartment is thread-affine.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := ole.CoInitializeEx(0, ole.COINIT_APARTMENTTHREADED); err != nil {
		return fmt.Errorf("%w: initializing COM: %v", ErrUnavailable, err)
	}
	defer ole.CoUninitialize()

	unknown, err := oleutil.CreateObject(wordProgID)
	if err != nil {
		return fmt.Errorf("%w: launching Word: %v", ErrUnavailable, err)
	}
	defer unknown.Release()

	app, err := unknown.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("%w: binding Word automation interface: %v", ErrUnavailable, err)
	}
	defer func() {
		// SaveChanges:=wdDoNotSaveChanges for any document still open.
		_, _ = oleutil.CallMethod(app, "Quit", 0)
		app.Release()
	}()

	if _, err := oleutil.PutProperty(app, "Visible", false); err != nil {
		return fmt.Errorf("configuring Word session: %w", err)
	}
	// wdAlertsNone; export must never block on a dialog.
	if _, err := oleutil.PutProperty(app, "DisplayAlerts", 0); err != nil {
		return fmt.Errorf("configuring Word session: %w", err)
	}

	docsVar, err := oleutil.GetProperty(app, "Documents")
	if err != nil {
		return fmt.Errorf("accessing Documents collection: %w", err)
	}
	docs := docsVar.ToIDispatch()
	defer docs.Release()

	// Open(FileName, ConfirmConversions:=False, ReadOnly:=True); the
	// source document is never modified.
	docVar, err := oleutil.CallMethod(docs, "Open", input, false, true)
	if err != nil {
		return fmt.Errorf("opening %s: %w", input, err)
	}
	doc := docVar.ToIDispatch()
	defer doc.Release()

	if _, err := oleutil.CallMethod(doc, "ExportAsFixedFormat", output, wdExportFormatPDF); err != nil {
		_, _ = oleutil.CallMethod(doc, "Close", false)
		return fmt.Errorf("exporting %s to PDF: %w", input, err)
	}

	if _, err := oleutil.CallMethod(doc, "Close", false); err != nil {
		return fmt.Errorf("closing %s: %w", input, err)
	}
	return nil
}

// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

package nios

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/tidwall/gjson"
)

// fileopObject is the WAPI object hosting all file transfer functions
const fileopObject = "fileop"

// maxErrorBodyLength bounds how much of a failed transfer response is kept
const maxErrorBodyLength = 4096

// transfer is the token and URL pair returned by a begin function
type transfer struct {
	Token string
	URL   string
}

// CSVImportOptions configures a CSV import job
//
// Zero values fall back to INSERT, STOP, OVERRIDE and COMMA.
type CSVImportOptions struct {
	Operation    string
	OnError      string
	UpdateMethod string
	Separator    string
}

// CSVImportTask is the server side state of a CSV import job
type CSVImportTask struct {
	Ref            string
	ImportID       int64
	Status         string
	FileName       string
	LinesProcessed int64
	LinesFailed    int64
	LinesWarning   int64
}

// Done reports whether the task reached a terminal state
func (t CSVImportTask) Done() bool {
	return isTerminalImportStatus(t.Status)
}

// LogFilesOptions selects the log retrieved by GetLogFiles
//
// LogType defaults to SYSLOG and NodeType to ACTIVE.
type LogFilesOptions struct {
	LogType        string
	NodeType       string
	IncludeRotated bool
}

// SupportBundleOptions selects the content of a support bundle
type SupportBundleOptions struct {
	IncludeCoreFiles   bool
	IncludeRotatedLogs bool
	LogFiles           bool
}

// BackupOption configures GridBackup
type BackupOption func(*Body)

// WithDiscoveryData includes network discovery data in a grid backup
func WithDiscoveryData() BackupOption {
	return func(b *Body) {
		*b = b.Set("discovery_data", true)
	}
}

// GridBackup downloads a grid database backup to filename
//
// An empty filename keeps the name offered by the Grid Manager.
//
// Example:
//
//	err := client.GridBackup(ctx, "backup.tar.gz")
func (c *Client) GridBackup(ctx context.Context, filename string, opts ...BackupOption) error {
	const op = "GridBackup"

	body := Body{}.Set("type", "BACKUP")
	for _, opt := range opts {
		opt(&body)
	}

	return c.downloadWorkflow(ctx, op, "getgriddata", body, filename)
}

// GridRestore uploads a backup file and restores the grid database from it
//
// mode is one of NORMAL, FORCED or CLONE. keepGridIP keeps the current
// Grid Manager address instead of the one stored in the backup.
func (c *Client) GridRestore(ctx context.Context, filename, mode string, keepGridIP bool) error {
	const op = "GridRestore"

	if err := ValidateEnum("mode", mode, ValidRestoreModes); err != nil {
		return err
	}

	t, err := c.upload(ctx, op, filename)
	if err != nil {
		return err
	}

	body := Body{}.
		Set("mode", mode).
		Set("keep_grid_ip", keepGridIP).
		Set("token", t.Token)
	if _, err := c.fileop(ctx, op, "restoredatabase", body); err != nil {
		return err
	}

	c.logger.Info(ctx, "grid restore started",
		"file", filepath.Base(filename),
		"mode", mode,
		"keep_grid_ip", keepGridIP)
	return nil
}

// CSVExport exports all objects of a type as NIOS CSV to filename
//
// An empty filename keeps the name offered by the Grid Manager.
func (c *Client) CSVExport(ctx context.Context, object, filename string) error {
	const op = "CSVExport"

	if err := validateObject(object); err != nil {
		return err
	}

	body := Body{}.Set("_object", object)
	return c.downloadWorkflow(ctx, op, "csv_export", body, filename)
}

// CSVImport uploads a NIOS CSV file and starts an import job
//
// The returned task can be polled with CSVImportStatus or WaitForCSVImport.
//
// Example:
//
//	task, err := client.CSVImport(ctx, "networks.csv", nios.CSVImportOptions{
//	    Operation: nios.CSVOperationInsert,
//	    OnError:   nios.CSVOnErrorContinue,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	task, err = client.WaitForCSVImport(ctx, task.Ref)
func (c *Client) CSVImport(ctx context.Context, filename string, opts CSVImportOptions) (CSVImportTask, error) {
	const op = "CSVImport"

	if opts.Operation == "" {
		opts.Operation = CSVOperationInsert
	}
	if opts.OnError == "" {
		opts.OnError = CSVOnErrorStop
	}
	if opts.UpdateMethod == "" {
		opts.UpdateMethod = CSVUpdateOverride
	}
	if opts.Separator == "" {
		opts.Separator = CSVSeparatorComma
	}
	for _, check := range []struct {
		param, value string
		valid        []string
	}{
		{"operation", opts.Operation, ValidCSVOperations},
		{"on_error", opts.OnError, ValidCSVOnError},
		{"update_method", opts.UpdateMethod, ValidCSVUpdateMethod},
		{"separator", opts.Separator, ValidCSVSeparators},
	} {
		if err := ValidateEnum(check.param, check.value, check.valid); err != nil {
			return CSVImportTask{}, err
		}
	}

	t, err := c.upload(ctx, op, filename)
	if err != nil {
		return CSVImportTask{}, err
	}

	body := Body{}.
		Set("action", "START").
		Set("doimport", true).
		Set("on_error", opts.OnError).
		Set("operation", opts.Operation).
		Set("update_method", opts.UpdateMethod).
		Set("separator", opts.Separator).
		Set("token", t.Token)
	res, err := c.fileop(ctx, op, "csv_import", body)
	if err != nil {
		return CSVImportTask{}, err
	}

	task := parseCSVImportTask(res.Get("csv_import_task"))
	c.logger.Info(ctx, "CSV import started",
		"file", filepath.Base(filename),
		"import_id", task.ImportID,
		"operation", opts.Operation)
	return task, nil
}

// CSVImportStatus reads the state of a CSV import job
func (c *Client) CSVImportStatus(ctx context.Context, ref string) (CSVImportTask, error) {
	res, err := c.Get(ctx, ref, ReturnFields(
		"import_id", "status", "file_name",
		"lines_processed", "lines_failed", "lines_warning"))
	if err != nil {
		return CSVImportTask{}, err
	}
	return parseCSVImportTask(res.JSON()), nil
}

// WaitForCSVImport polls a CSV import job every PollInterval until it
// completes, fails or is stopped
//
// Returns the last task state together with the context error when ctx ends first.
func (c *Client) WaitForCSVImport(ctx context.Context, ref string) (CSVImportTask, error) {
	ticker := time.NewTicker(c.PollInterval)
	defer ticker.Stop()

	for {
		task, err := c.CSVImportStatus(ctx, ref)
		if err != nil {
			return task, err
		}

		c.logger.Debug(ctx, "CSV import progress",
			"import_id", task.ImportID,
			"status", task.Status,
			"lines_processed", task.LinesProcessed,
			"lines_failed", task.LinesFailed)

		if task.Done() {
			c.logger.Info(ctx, "CSV import finished",
				"import_id", task.ImportID,
				"status", task.Status,
				"lines_processed", task.LinesProcessed,
				"lines_failed", task.LinesFailed,
				"lines_warning", task.LinesWarning)
			return task, nil
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return task, fmt.Errorf("waiting for CSV import %d: %w", task.ImportID, ctx.Err())
		}
	}
}

// CSVErrorLog downloads the error log of a CSV import job
func (c *Client) CSVErrorLog(ctx context.Context, importID int64, filename string) error {
	body := Body{}.Set("import_id", importID)
	return c.downloadWorkflow(ctx, "CSVErrorLog", "csv_error_log", body, filename)
}

// GetLogFiles downloads a log archive from a grid member
func (c *Client) GetLogFiles(ctx context.Context, member, filename string, opts LogFilesOptions) error {
	if member == "" {
		return invalidParam("member", "member cannot be empty")
	}
	if opts.LogType == "" {
		opts.LogType = LogTypeSyslog
	}
	if opts.NodeType == "" {
		opts.NodeType = NodeActive
	}
	if err := ValidateEnum("log_type", opts.LogType, ValidLogTypes); err != nil {
		return err
	}
	if err := ValidateEnum("node_type", opts.NodeType, ValidNodeTypes); err != nil {
		return err
	}

	body := Body{}.
		Set("log_type", opts.LogType).
		Set("member", member).
		Set("node_type", opts.NodeType).
		Set("include_rotated", opts.IncludeRotated)
	return c.downloadWorkflow(ctx, "GetLogFiles", "get_log_files", body, filename)
}

// MemberConfig downloads a configuration or data file from a grid member
//
// confType is one of the Member* constants. An empty filename keeps the
// name offered by the Grid Manager.
func (c *Client) MemberConfig(ctx context.Context, member, confType, filename string) error {
	if member == "" {
		return invalidParam("member", "member cannot be empty")
	}
	if err := ValidateEnum("type", confType, ValidMemberDataTypes); err != nil {
		return err
	}

	body := Body{}.
		Set("member", member).
		Set("type", confType)
	return c.downloadWorkflow(ctx, "MemberConfig", "getmemberdata", body, filename)
}

// SupportBundle downloads a support bundle from a grid member
func (c *Client) SupportBundle(ctx context.Context, member, filename string, opts SupportBundleOptions) error {
	if member == "" {
		return invalidParam("member", "member cannot be empty")
	}

	body := Body{}.
		Set("member", member).
		Set("include_core_files", opts.IncludeCoreFiles).
		Set("include_rotated_logs", opts.IncludeRotatedLogs).
		Set("log_files", opts.LogFiles)
	return c.downloadWorkflow(ctx, "SupportBundle", "get_support_bundle", body, filename)
}

// downloadWorkflow runs begin function, download and downloadcomplete
func (c *Client) downloadWorkflow(ctx context.Context, op, function string, body Body, filename string) error {
	res, err := c.fileop(ctx, op, function, body)
	if err != nil {
		return err
	}

	t, err := parseTransfer(op, function, res)
	if err != nil {
		return err
	}

	filename, err = c.download(ctx, op, t.URL, filename)
	if err != nil {
		return err
	}

	if _, err := c.fileop(ctx, op, "downloadcomplete", Body{}.Set("token", t.Token)); err != nil {
		return err
	}

	c.logger.Info(ctx, "file downloaded",
		"operation", op,
		"file", filename)
	return nil
}

// fileop calls a fileop function and names the workflow step on failure
func (c *Client) fileop(ctx context.Context, op, function string, body Body) (Res, error) {
	res, err := c.Post(ctx, fileopObject, body, Function(function))
	if err != nil {
		var reqErr *RequestError
		if errors.As(err, &reqErr) {
			reqErr.Operation = op + ": " + function
		}
		return res, err
	}
	return res, nil
}

// parseTransfer reads the token and URL returned by a begin function
func parseTransfer(op, function string, res Res) (transfer, error) {
	t := transfer{
		Token: res.Get("token").String(),
		URL:   res.Get("url").String(),
	}
	if t.Token == "" || t.URL == "" {
		return t, &RequestError{
			Operation:  op + ": " + function,
			StatusCode: res.StatusCode,
			Body:       res.Raw,
			Message:    "response carries no token or url",
			Err:        ErrRequest,
		}
	}
	return t, nil
}

// upload calls uploadinit and streams filename to the returned URL
func (c *Client) upload(ctx context.Context, op, filename string) (transfer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return transfer{}, invalidParam("filename", "cannot open %s", filepath.Base(filename))
	}
	defer f.Close()

	res, err := c.fileop(ctx, op, "uploadinit", Body{})
	if err != nil {
		return transfer{}, err
	}
	t, err := parseTransfer(op, "uploadinit", res)
	if err != nil {
		return t, err
	}

	name := filepath.Base(filename)
	c.logger.Debug(ctx, "uploading file",
		"operation", op,
		"file", name,
		"url", t.URL)

	resp, err := c.http.R().
		SetContext(ctx).
		SetMultipartFormData(map[string]string{"name": name}).
		SetFileReader("filedata", name, f).
		Post(t.URL)
	if err != nil {
		return t, &RequestError{
			Operation:   op + ": upload",
			Message:     "transport error",
			InternalMsg: err.Error(),
			Err:         err,
		}
	}
	if resp.StatusCode() != http.StatusOK {
		return t, &RequestError{
			Operation:  op + ": upload",
			StatusCode: resp.StatusCode(),
			Body:       resp.String(),
			Errors:     parseWapiErrors(resp.String()),
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode()),
			Err:        ErrRequest,
		}
	}

	return t, nil
}

// download streams the file behind rawURL to filename
//
// Returns the name of the file written.
func (c *Client) download(ctx context.Context, op, rawURL, filename string) (string, error) {
	if filename == "" {
		filename = filenameFromURL(rawURL)
		if filename == "" {
			return "", invalidParam("filename", "cannot derive a filename from %s", rawURL)
		}
	}

	c.logger.Debug(ctx, "downloading file",
		"operation", op,
		"url", rawURL,
		"file", filename)

	resp, err := c.http.R().
		SetContext(ctx).
		SetDoNotParseResponse(true).
		SetHeader("Content-Type", "application/force-download").
		Get(rawURL)
	if err != nil {
		return "", &RequestError{
			Operation:   op + ": download",
			Message:     "transport error",
			InternalMsg: err.Error(),
			Err:         err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode() != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyLength))
		return "", &RequestError{
			Operation:  op + ": download",
			StatusCode: resp.StatusCode(),
			Body:       string(data),
			Errors:     parseWapiErrors(string(data)),
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode()),
			Err:        ErrRequest,
		}
	}

	f, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("%s: create %s: %w", op, filename, err)
	}
	n, err := io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(filename)
		return "", &RequestError{
			Operation:   op + ": download",
			StatusCode:  resp.StatusCode(),
			Message:     "writing " + filename,
			InternalMsg: err.Error(),
			Err:         err,
		}
	}

	c.logger.Debug(ctx, "download finished",
		"operation", op,
		"file", filename,
		"bytes", n)
	return filename, nil
}

// filenameFromURL returns the last path element of a download URL
func filenameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func parseCSVImportTask(r gjson.Result) CSVImportTask {
	return CSVImportTask{
		Ref:            r.Get("_ref").String(),
		ImportID:       r.Get("import_id").Int(),
		Status:         r.Get("status").String(),
		FileName:       r.Get("file_name").String(),
		LinesProcessed: r.Get("lines_processed").Int(),
		LinesFailed:    r.Get("lines_failed").Int(),
		LinesWarning:   r.Get("lines_warning").Int(),
	}
}

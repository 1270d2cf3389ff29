// SPDX-License-Identifier: MPL-2.0
// Copyright (c) 2025 Daniel Schmidt

// Package nios provides a simple, fluent API for managing Infoblox NIOS grids
// through WAPI, the Grid Manager REST interface.
//
// The library handles session setup (basic or client certificate auth), JSON
// manipulation, error handling with automatic retry of idempotent reads, and
// the multi-step file transfer workflows behind backup, restore and CSV bulk
// import and export.
//
// # Quick Start
//
// Create a client, connect and query objects:
//
//	client, err := nios.NewClient(
//	    "gm.example.com",
//	    nios.WapiVersion("2.11"),
//	    nios.Username("admin"),
//	    nios.Password("infoblox"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	ctx := context.Background()
//	if err := client.Connect(ctx); err != nil {
//	    log.Fatal(err)
//	}
//
//	res, err := client.Get(ctx, "network", nios.Param("network_view", "default"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, n := range res.Get("#.network").Array() {
//	    fmt.Println(n.String())
//	}
//
// # JSON Manipulation
//
// Use the Body builder for constructing payloads:
//
//	body := nios.Body{}.
//	    Set("network", "10.10.0.0/24").
//	    Set("comment", "lab").
//	    ExtAttr("Site", "HQ")
//
//	res, err = client.Post(ctx, "network", body)
//	fmt.Println("created", res.Ref())
//
// # File Operations
//
// Backups, restores and CSV jobs run through the fileop object. Each call
// requests a token, transfers the file and finalizes the transfer:
//
//	if err := client.GridBackup(ctx, "grid.bak"); err != nil {
//	    log.Fatal(err)
//	}
//
//	task, err := client.CSVImport(ctx, "networks.csv", nios.CSVImportOptions{
//	    Operation: nios.CSVOperationInsert,
//	})
//	task, err = client.WaitForCSVImport(ctx, task.Ref)
//
// The csvmodel subpackage builds and validates NIOS CSV import files.
//
// # Error Handling
//
// Caller mistakes are reported as *InvalidParameterError and everything the
// Grid Manager rejects as *RequestError:
//
//	var reqErr *nios.RequestError
//	if errors.As(err, &reqErr) {
//	    fmt.Println(reqErr.StatusCode, reqErr.Message)
//	}
//
// GET requests are retried on 429, 502, 503 and 504 with exponential backoff.
// Requests with side effects are never retried.
//
// # Thread Safety
//
// A Client can be shared between goroutines. Session state (grid reference,
// WAPI version) is guarded by a mutex.
//
// # References
//
//   - gjson: https://github.com/tidwall/gjson
//   - sjson: https://github.com/tidwall/sjson
//   - resty: https://resty.dev
package nios

// Package monitor drives the repeating scan-report cycle: sweep, fetch
// records, render the table, release the record buffer, sleep. Any
// driver failure stops the loop and propagates; there is no retry.
package monitor

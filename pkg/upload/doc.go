// Package upload materializes files selected through a file control.
//
// The markup builder only emits the <input type="file"> element; the bytes
// travel over a plain HTTP POST because large bodies and long-lived
// reactive connections mix poorly. The flow:
//
//  1. User picks files in the control with id "file1"
//  2. Client POSTs them as multipart form data to /upload/file1
//  3. Handler saves the batch through a Store (disk or S3)
//  4. The resulting []Record is published under "file1" in the binding
//     registry, replacing whatever the control published before
//  5. Server-side readers pick the records up by control id; each Record's
//     Datapath points at the transient stored bytes
//
// A control id owns at most one live batch. Saving again invalidates the
// previous batch and its datapaths, so consumers must not hold on to paths
// across uploads.
package upload

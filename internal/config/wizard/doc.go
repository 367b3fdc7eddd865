// Package wizard implements the interactive configuration wizard behind
// cloudbase init.
//
// The wizard asks for the few values that usually differ between
// deployments (stack identity, environment, log retention, NFS source
// range, cluster naming, publish bucket) and writes a cloudbase.yaml that
// overlays them on the reference configuration.
package wizard

// Package apiv1 defines the control API of the alarm daemon: wire messages,
// the AlarmService gRPC descriptor with its client and server bindings, and
// the JSON codec the messages travel with.
//
// Clients created with NewAlarmServiceClient select the codec automatically.
// Standard protobuf services served next to AlarmService (health checks) keep
// working because the codec encodes proto messages with protojson.
package apiv1

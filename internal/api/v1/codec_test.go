package apiv1

import (
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/encoding"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// TestCodec_Registered makes the codec available to clients and servers.
func TestCodec_Registered(t *testing.T) {
	t.Parallel()

	codec := encoding.GetCodec(CodecName)
	require.NotNil(t, codec)
	require.Equal(t, CodecName, codec.Name())
}

// TestCodec_KeepsMissingSelection distinguishes midnight from no selection.
func TestCodec_KeepsMissingSelection(t *testing.T) {
	t.Parallel()

	var (
		codec    Codec
		midnight = int32(0)
	)

	data, err := codec.Marshal(&ArmRequest{Hour: &midnight, Minute: &midnight})
	require.NoError(t, err)
	require.JSONEq(t, `{"hour":0,"minute":0}`, string(data))

	data, err = codec.Marshal(&ArmRequest{PauseUntil: &ClockTime{Hour: 6}})
	require.NoError(t, err)

	var decoded ArmRequest
	require.NoError(t, codec.Unmarshal(data, &decoded))
	require.Nil(t, decoded.GetHour())
	require.Nil(t, decoded.GetMinute())
	require.Equal(t, int32(6), decoded.GetPauseUntil().GetHour())
	require.Nil(t, decoded.GetPauseFor())

	require.Error(t, codec.Unmarshal([]byte("{"), &decoded))
}

// TestCodec_ProtoMessages routes proto messages through protojson.
func TestCodec_ProtoMessages(t *testing.T) {
	t.Parallel()

	var codec Codec

	data, err := codec.Marshal(&healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING})
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"SERVING"}`, string(data))

	var decoded healthpb.HealthCheckResponse
	require.NoError(t, codec.Unmarshal(data, &decoded))
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, decoded.GetStatus())
}

// TestGetters_NilSafe allows chained access on missing messages.
func TestGetters_NilSafe(t *testing.T) {
	t.Parallel()

	var (
		req    *ArmRequest
		resp   *AlarmStatusResponse
		cancel *CancelRequest
	)

	require.Nil(t, req.GetHour())
	require.Empty(t, req.GetActor().GetUsername())
	require.Zero(t, req.GetPauseFor().GetHours())
	require.Empty(t, resp.GetState())
	require.Zero(t, resp.GetTarget().GetMinute())
	require.Nil(t, resp.GetNextFire())
	require.Nil(t, cancel.GetActor())
}

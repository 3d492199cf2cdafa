package protocol

import (
	"bytes"
	"testing"

	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
)

// собирает wire-байты вложенного сообщения
func sub(num protowire.Number, body []byte) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendBytes(b, body)
}

func varintField(num protowire.Number, v uint64) []byte {
	b := protowire.AppendTag(nil, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

func stringField(num protowire.Number, s string) []byte {
	b := protowire.AppendTag(nil, num, protowire.BytesType)
	return protowire.AppendString(b, s)
}

func TestEncodeRequestWireFields(t *testing.T) {
	t.Parallel()

	req := &AppRequest{
		Seq:         proto.Uint32(7),
		PlayerID:    proto.Uint64(76561198000000001),
		PlayerToken: proto.Int32(-12345),
		GetInfo:     &AppEmpty{},
	}
	data, err := EncodeRequest(req)
	if err != nil {
		t.Fatalf("EncodeRequest: %v", err)
	}

	// разбираем обратно протоволокном и сверяем номера полей
	got := map[protowire.Number]uint64{}
	var hasGetInfo bool
	for len(data) > 0 {
		num, typ, n := protowire.ConsumeTag(data)
		if n < 0 {
			t.Fatalf("bad tag")
		}
		data = data[n:]
		switch typ {
		case protowire.VarintType:
			v, n := protowire.ConsumeVarint(data)
			got[num] = v
			data = data[n:]
		case protowire.BytesType:
			body, n := protowire.ConsumeBytes(data)
			if num == 8 {
				hasGetInfo = true
				if len(body) != 0 {
					t.Errorf("getInfo payload = %d bytes, want empty", len(body))
				}
			}
			data = data[n:]
		default:
			t.Fatalf("unexpected wire type %v", typ)
		}
	}

	if got[1] != 7 {
		t.Errorf("seq = %d, want 7", got[1])
	}
	if got[2] != 76561198000000001 {
		t.Errorf("playerId = %d", got[2])
	}
	if int64(got[3]) != -12345 {
		t.Errorf("playerToken = %d, want -12345", int64(got[3]))
	}
	if !hasGetInfo {
		t.Error("getInfo field missing")
	}
}

func TestEncodeRequestNil(t *testing.T) {
	t.Parallel()
	if _, err := EncodeRequest(nil); err == nil {
		t.Fatal("want error for nil request")
	}
}

func TestDecodeResponseInfo(t *testing.T) {
	t.Parallel()

	info := stringField(1, "Test Server")
	info = append(info, stringField(2, "Procedural Map")...)
	info = append(info, varintField(3, 4000)...)
	info = append(info, varintField(5, 42)...)
	info = append(info, varintField(6, 100)...)

	resp := varintField(1, 99)
	resp = append(resp, sub(5, info)...)
	data := sub(1, resp)

	m, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	r := m.GetResponse()
	if r.GetSeq() != 99 {
		t.Errorf("seq = %d, want 99", r.GetSeq())
	}
	i := r.GetInfo()
	if i.GetName() != "Test Server" || i.GetMap() != "Procedural Map" {
		t.Errorf("info = %q / %q", i.GetName(), i.GetMap())
	}
	if i.GetMapSize() != 4000 || i.GetPlayers() != 42 || i.GetMaxPlayers() != 100 {
		t.Errorf("numbers = %d/%d/%d", i.GetMapSize(), i.GetPlayers(), i.GetMaxPlayers())
	}
}

func TestDecodeResponseError(t *testing.T) {
	t.Parallel()

	resp := varintField(1, 3)
	resp = append(resp, sub(3, stringField(1, "rate_limit"))...)
	m, err := DecodeMessage(sub(1, resp))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if got := m.GetResponse().GetError().GetError(); got != "rate_limit" {
		t.Errorf("error tag = %q", got)
	}
}

func TestDecodeBroadcastCameraRays(t *testing.T) {
	t.Parallel()

	rays := varintField(2, 16) // sampleOffset
	rayBytes := []byte{0xFF, 0x40, 0x3F, 0x05}
	rays = append(rays, sub(3, rayBytes)...)
	m, err := DecodeMessage(sub(2, rays))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	r := m.GetBroadcast().GetCameraRays()
	if r.GetSampleOffset() != 16 {
		t.Errorf("sampleOffset = %d, want 16", r.GetSampleOffset())
	}
	if !bytes.Equal(r.GetRayData(), rayBytes) {
		t.Errorf("rayData = %x", r.GetRayData())
	}
	if !ValidCameraRays(m) {
		t.Error("ValidCameraRays = false")
	}
}

func TestDecodeBroadcastTeamMessage(t *testing.T) {
	t.Parallel()

	tm := varintField(1, 123)
	tm = append(tm, stringField(2, "player")...)
	tm = append(tm, stringField(3, "!help")...)
	m, err := DecodeMessage(sub(2, sub(5, sub(1, tm))))
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	msg := m.GetBroadcast().GetTeamMessage().GetMessage()
	if msg.GetSteamID() != 123 || msg.GetMessage() != "!help" {
		t.Errorf("message = %d %q", msg.GetSteamID(), msg.GetMessage())
	}
	if !ValidTeamMessage(m) {
		t.Error("ValidTeamMessage = false")
	}
}

// незнакомые поля должны молча пропускаться
func TestDecodeSkipsUnknownFields(t *testing.T) {
	t.Parallel()

	data := varintField(77, 1)
	data = append(data, sub(78, []byte{1, 2, 3})...)
	resp := varintField(1, 5)
	resp = append(resp, varintField(90, 0)...)
	resp = append(resp, sub(4, nil)...) // success
	data = append(data, sub(1, resp)...)

	m, err := DecodeMessage(data)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	if m.GetResponse().GetSeq() != 5 {
		t.Errorf("seq = %d, want 5", m.GetResponse().GetSeq())
	}
	if m.GetResponse().GetSuccess() == nil {
		t.Error("success missing")
	}
}

func TestDecodeTruncated(t *testing.T) {
	t.Parallel()

	cases := [][]byte{
		{0x0A},             // length-delimited без длины
		{0x0A, 0x05, 0x01}, // заявлено 5 байт, есть 1
		{0x80},             // оборванный varint-тег
	}
	for _, c := range cases {
		if _, err := DecodeMessage(c); err == nil {
			t.Errorf("DecodeMessage(%x): want error", c)
		}
	}
}

func TestDecodeEmpty(t *testing.T) {
	t.Parallel()
	m, err := DecodeMessage(nil)
	if err != nil {
		t.Fatalf("DecodeMessage(nil): %v", err)
	}
	if m.GetResponse() != nil || m.GetBroadcast() != nil {
		t.Error("empty message should have no payload")
	}
}

package protocol

import (
	"errors"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// Номера полей AppRequest — фиксированы схемой companion-сервера,
// менять нельзя.
const (
	reqFieldSeq         = 1
	reqFieldPlayerID    = 2
	reqFieldPlayerToken = 3
	reqFieldEntityID    = 4

	reqFieldGetInfo           = 8
	reqFieldGetTime           = 9
	reqFieldGetMap            = 10
	reqFieldGetTeamInfo       = 11
	reqFieldGetTeamChat       = 12
	reqFieldSendTeamMessage   = 13
	reqFieldGetEntityInfo     = 14
	reqFieldSetEntityValue    = 15
	reqFieldCheckSubscription = 16
	reqFieldSetSubscription   = 17
	reqFieldGetMapMarkers     = 18
	reqFieldPromoteToLeader   = 20
	reqFieldGetClanInfo       = 21
	reqFieldSetClanMotd       = 22
	reqFieldGetClanChat       = 23
	reqFieldSendClanMessage   = 24
	reqFieldGetNexusAuth      = 25
	reqFieldCameraSubscribe   = 30
	reqFieldCameraUnsubscribe = 31
	reqFieldCameraInput       = 32
)

var errNilRequest = errors.New("protocol: nil request")

// EncodeRequest сериализует AppRequest в protobuf wire-формат.
func EncodeRequest(m *AppRequest) ([]byte, error) {
	if m == nil {
		return nil, errNilRequest
	}
	var b []byte
	if m.Seq != nil {
		b = appendUint(b, reqFieldSeq, uint64(*m.Seq))
	}
	if m.PlayerID != nil {
		b = appendUint(b, reqFieldPlayerID, *m.PlayerID)
	}
	if m.PlayerToken != nil {
		b = appendInt(b, reqFieldPlayerToken, int64(*m.PlayerToken))
	}
	if m.EntityID != nil {
		b = appendUint(b, reqFieldEntityID, uint64(*m.EntityID))
	}
	if m.GetInfo != nil {
		b = appendMsg(b, reqFieldGetInfo, nil)
	}
	if m.GetTime != nil {
		b = appendMsg(b, reqFieldGetTime, nil)
	}
	if m.GetMap != nil {
		b = appendMsg(b, reqFieldGetMap, nil)
	}
	if m.GetTeamInfo != nil {
		b = appendMsg(b, reqFieldGetTeamInfo, nil)
	}
	if m.GetTeamChat != nil {
		b = appendMsg(b, reqFieldGetTeamChat, nil)
	}
	if m.SendTeamMessage != nil {
		b = appendMsg(b, reqFieldSendTeamMessage, appendSendMessage(nil, m.SendTeamMessage))
	}
	if m.GetEntityInfo != nil {
		b = appendMsg(b, reqFieldGetEntityInfo, nil)
	}
	if m.SetEntityValue != nil {
		b = appendMsg(b, reqFieldSetEntityValue, appendSetEntityValue(nil, m.SetEntityValue))
	}
	if m.CheckSubscription != nil {
		b = appendMsg(b, reqFieldCheckSubscription, nil)
	}
	if m.SetSubscription != nil {
		b = appendMsg(b, reqFieldSetSubscription, appendFlag(nil, m.SetSubscription))
	}
	if m.GetMapMarkers != nil {
		b = appendMsg(b, reqFieldGetMapMarkers, nil)
	}
	if m.PromoteToLeader != nil {
		b = appendMsg(b, reqFieldPromoteToLeader, appendPromoteToLeader(nil, m.PromoteToLeader))
	}
	if m.GetClanInfo != nil {
		b = appendMsg(b, reqFieldGetClanInfo, nil)
	}
	if m.SetClanMotd != nil {
		b = appendMsg(b, reqFieldSetClanMotd, appendSendMessage(nil, m.SetClanMotd))
	}
	if m.GetClanChat != nil {
		b = appendMsg(b, reqFieldGetClanChat, nil)
	}
	if m.SendClanMessage != nil {
		b = appendMsg(b, reqFieldSendClanMessage, appendSendMessage(nil, m.SendClanMessage))
	}
	if m.GetNexusAuth != nil {
		b = appendMsg(b, reqFieldGetNexusAuth, appendGetNexusAuth(nil, m.GetNexusAuth))
	}
	if m.CameraSubscribe != nil {
		b = appendMsg(b, reqFieldCameraSubscribe, appendCameraSubscribe(nil, m.CameraSubscribe))
	}
	if m.CameraUnsubscribe != nil {
		b = appendMsg(b, reqFieldCameraUnsubscribe, nil)
	}
	if m.CameraInput != nil {
		b = appendMsg(b, reqFieldCameraInput, appendCameraInput(nil, m.CameraInput))
	}
	return b, nil
}

func appendSendMessage(b []byte, m *AppSendMessage) []byte {
	if m.Message != nil {
		b = appendString(b, 1, *m.Message)
	}
	return b
}

func appendSetEntityValue(b []byte, m *AppSetEntityValue) []byte {
	if m.Value != nil {
		b = appendBool(b, 1, *m.Value)
	}
	return b
}

func appendFlag(b []byte, m *AppFlag) []byte {
	if m.Value != nil {
		b = appendBool(b, 1, *m.Value)
	}
	return b
}

func appendPromoteToLeader(b []byte, m *AppPromoteToLeader) []byte {
	if m.SteamID != nil {
		b = appendUint(b, 1, *m.SteamID)
	}
	return b
}

func appendGetNexusAuth(b []byte, m *AppGetNexusAuth) []byte {
	if m.AppKey != nil {
		b = appendString(b, 1, *m.AppKey)
	}
	return b
}

func appendCameraSubscribe(b []byte, m *AppCameraSubscribe) []byte {
	if m.CameraID != nil {
		b = appendString(b, 1, *m.CameraID)
	}
	return b
}

func appendCameraInput(b []byte, m *AppCameraInput) []byte {
	if m.Buttons != nil {
		b = appendInt(b, 1, int64(*m.Buttons))
	}
	if m.MouseDelta != nil {
		b = appendMsg(b, 2, appendVector2(nil, m.MouseDelta))
	}
	return b
}

func appendVector2(b []byte, m *Vector2) []byte {
	if m.X != nil {
		b = appendFloat(b, 1, *m.X)
	}
	if m.Y != nil {
		b = appendFloat(b, 2, *m.Y)
	}
	return b
}

// ----- низкоуровневые аппендеры над protowire -----

func appendUint(b []byte, num protowire.Number, v uint64) []byte {
	b = protowire.AppendTag(b, num, protowire.VarintType)
	return protowire.AppendVarint(b, v)
}

// appendInt кодирует знаковый int как varint (семантика proto int32/int64:
// отрицательные значения занимают 10 байт).
func appendInt(b []byte, num protowire.Number, v int64) []byte {
	return appendUint(b, num, uint64(v))
}

func appendBool(b []byte, num protowire.Number, v bool) []byte {
	u := uint64(0)
	if v {
		u = 1
	}
	return appendUint(b, num, u)
}

func appendString(b []byte, num protowire.Number, v string) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendString(b, v)
}

func appendFloat(b []byte, num protowire.Number, v float32) []byte {
	b = protowire.AppendTag(b, num, protowire.Fixed32Type)
	return protowire.AppendFixed32(b, math.Float32bits(v))
}

func appendMsg(b []byte, num protowire.Number, sub []byte) []byte {
	b = protowire.AppendTag(b, num, protowire.BytesType)
	return protowire.AppendBytes(b, sub)
}

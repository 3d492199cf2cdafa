package protocol

import (
	"fmt"
	"math"

	"google.golang.org/protobuf/encoding/protowire"
)

// DecodeMessage разбирает входящий AppMessage из protobuf wire-формата.
// Незнакомые поля пропускаются (forward-совместимость со схемой сервера),
// битый varint/length — ошибка декодирования.
func DecodeMessage(b []byte) (*AppMessage, error) {
	m := &AppMessage{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, fmt.Errorf("protocol: decode message: %w", err)
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Response, err = decodeResponse(sub); err != nil {
				return nil, err
			}
		case num == 2 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Broadcast, err = decodeBroadcast(sub); err != nil {
				return nil, err
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeResponse(b []byte) (*AppResponse, error) {
	m := &AppResponse{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if typ == protowire.VarintType && num == 1 {
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Seq = ptr(uint32(v))
			continue
		}
		if typ != protowire.BytesType {
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
			continue
		}
		sub, err := s.bytes()
		if err != nil {
			return nil, err
		}
		switch num {
		case 3:
			m.Error, err = decodeError(sub)
		case 4:
			m.Success = &AppSuccess{}
		case 5:
			m.Info, err = decodeInfo(sub)
		case 6:
			m.Time, err = decodeTime(sub)
		case 7:
			m.Map, err = decodeMap(sub)
		case 8:
			m.TeamInfo, err = decodeTeamInfo(sub)
		case 9:
			m.TeamChat, err = decodeTeamChat(sub)
		case 10:
			m.EntityInfo, err = decodeEntityInfo(sub)
		case 11:
			m.Flag, err = decodeFlag(sub)
		case 12:
			m.MapMarkers, err = decodeMapMarkers(sub)
		case 15:
			m.ClanInfo, err = decodeClanInfo(sub)
		case 16:
			m.ClanChat, err = decodeClanChat(sub)
		case 17:
			m.NexusAuth, err = decodeNexusAuth(sub)
		case 20:
			m.CameraSubscribeInfo, err = decodeCameraInfo(sub)
		}
		if err != nil {
			return nil, err
		}
	}
}

func decodeBroadcast(b []byte) (*AppBroadcast, error) {
	m := &AppBroadcast{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if typ != protowire.BytesType {
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
			continue
		}
		sub, err := s.bytes()
		if err != nil {
			return nil, err
		}
		switch num {
		case 4:
			m.TeamChanged, err = decodeTeamChanged(sub)
		case 5:
			m.TeamMessage, err = decodeNewTeamMessage(sub)
		case 6:
			m.EntityChanged, err = decodeEntityChanged(sub)
		case 7:
			m.ClanChanged, err = decodeClanChanged(sub)
		case 8:
			m.ClanMessage, err = decodeNewClanMessage(sub)
		case 10:
			m.CameraRays, err = decodeCameraRays(sub)
		}
		if err != nil {
			return nil, err
		}
	}
}

func decodeError(b []byte) (*AppError, error) {
	m := &AppError{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Error = &v
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeFlag(b []byte) (*AppFlag, error) {
	m := &AppFlag{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.VarintType {
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Value = ptr(v != 0)
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeInfo(b []byte) (*AppInfo, error) {
	m := &AppInfo{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case typ == protowire.BytesType && num <= 4:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			switch num {
			case 1:
				m.Name = &v
			case 2:
				m.HeaderImage = &v
			case 3:
				m.URL = &v
			case 4:
				m.Map = &v
			}
		case typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			switch num {
			case 5:
				m.MapSize = ptr(uint32(v))
			case 6:
				m.WipeTime = ptr(uint32(v))
			case 7:
				m.Players = ptr(uint32(v))
			case 8:
				m.MaxPlayers = ptr(uint32(v))
			case 9:
				m.QueuedPlayers = ptr(uint32(v))
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTime(b []byte) (*AppTime, error) {
	m := &AppTime{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if typ != protowire.Fixed32Type {
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
			continue
		}
		v, err := s.float()
		if err != nil {
			return nil, err
		}
		switch num {
		case 1:
			m.DayLengthMinutes = &v
		case 2:
			m.TimeScale = &v
		case 3:
			m.Sunrise = &v
		case 4:
			m.Sunset = &v
		case 5:
			m.Time = &v
		}
	}
}

func decodeMap(b []byte) (*AppMap, error) {
	m := &AppMap{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Width = ptr(uint32(v))
		case num == 2 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Height = ptr(uint32(v))
		case num == 3 && typ == protowire.BytesType:
			v, err := s.bytes()
			if err != nil {
				return nil, err
			}
			m.JpgImage = v
		case num == 4 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.OceanMargin = ptr(int32(v))
		case num == 5 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			mon, err := decodeMapMonument(sub)
			if err != nil {
				return nil, err
			}
			m.Monuments = append(m.Monuments, mon)
		case num == 6 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Background = &v
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeMapMonument(b []byte) (*AppMapMonument, error) {
	m := &AppMapMonument{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Token = &v
		case num == 2 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.X = &v
		case num == 3 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Y = &v
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTeamInfo(b []byte) (*AppTeamInfo, error) {
	m := &AppTeamInfo{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.LeaderSteamID = ptr(v)
		case num == 2 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			mem, err := decodeTeamMember(sub)
			if err != nil {
				return nil, err
			}
			m.Members = append(m.Members, mem)
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTeamMember(b []byte) (*AppTeamMember, error) {
	m := &AppTeamMember{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.SteamID = ptr(v)
		case num == 2 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Name = &v
		case num == 3 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.X = &v
		case num == 4 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Y = &v
		case num == 5 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.IsOnline = ptr(v != 0)
		case num == 7 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.IsAlive = ptr(v != 0)
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTeamChat(b []byte) (*AppTeamChat, error) {
	m := &AppTeamChat{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			msg, err := decodeTeamMessage(sub)
			if err != nil {
				return nil, err
			}
			m.Messages = append(m.Messages, msg)
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeTeamMessage(b []byte) (*AppTeamMessage, error) {
	m := &AppTeamMessage{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.SteamID = ptr(v)
		case num == 2 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Name = &v
		case num == 3 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Message = &v
		case num == 5 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Time = ptr(uint32(v))
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeEntityInfo(b []byte) (*AppEntityInfo, error) {
	m := &AppEntityInfo{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Type = ptr(int32(v))
		case num == 3 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Payload, err = decodeEntityPayload(sub); err != nil {
				return nil, err
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeEntityPayload(b []byte) (*AppEntityPayload, error) {
	m := &AppEntityPayload{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Value = ptr(v != 0)
		case num == 3 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Capacity = ptr(int32(v))
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeMapMarkers(b []byte) (*AppMapMarkers, error) {
	m := &AppMapMarkers{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			mk, err := decodeMarker(sub)
			if err != nil {
				return nil, err
			}
			m.Markers = append(m.Markers, mk)
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeMarker(b []byte) (*AppMarker, error) {
	m := &AppMarker{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.ID = ptr(uint32(v))
		case num == 2 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Type = ptr(int32(v))
		case num == 3 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.X = &v
		case num == 4 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Y = &v
		case num == 5 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.SteamID = ptr(v)
		case num == 6 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Rotation = &v
		case num == 7 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Radius = &v
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeClanInfo(b []byte) (*AppClanInfo, error) {
	m := &AppClanInfo{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.ClanID = ptr(int64(v))
		case num == 2 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Name = &v
		case num == 3 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Motd = &v
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeClanChat(b []byte) (*AppClanChat, error) {
	m := &AppClanChat{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			msg, err := decodeClanMessage(sub)
			if err != nil {
				return nil, err
			}
			m.Messages = append(m.Messages, msg)
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeClanMessage(b []byte) (*AppClanMessage, error) {
	m := &AppClanMessage{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.SteamID = ptr(v)
		case num == 2 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Name = &v
		case num == 3 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.Message = &v
		case num == 4 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Time = ptr(int64(v))
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeNexusAuth(b []byte) (*AppNexusAuth, error) {
	m := &AppNexusAuth{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.BytesType:
			v, err := s.str()
			if err != nil {
				return nil, err
			}
			m.ServerID = &v
		case num == 2 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.PlayerToken = ptr(int32(v))
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeCameraInfo(b []byte) (*AppCameraInfo, error) {
	m := &AppCameraInfo{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Width = ptr(int32(v))
		case num == 2 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.Height = ptr(int32(v))
		case num == 3 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.NearPlane = &v
		case num == 4 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.FarPlane = &v
		case num == 5 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.ControlFlags = ptr(int32(v))
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeCameraRays(b []byte) (*AppCameraRays, error) {
	m := &AppCameraRays{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.VerticalFov = &v
		case num == 2 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.SampleOffset = ptr(int32(v))
		case num == 3 && typ == protowire.BytesType:
			v, err := s.bytes()
			if err != nil {
				return nil, err
			}
			m.RayData = v
		case num == 4 && typ == protowire.Fixed32Type:
			v, err := s.float()
			if err != nil {
				return nil, err
			}
			m.Distance = &v
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeTeamChanged(b []byte) (*AppTeamChanged, error) {
	m := &AppTeamChanged{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.PlayerID = ptr(v)
		case num == 2 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.TeamInfo, err = decodeTeamInfo(sub); err != nil {
				return nil, err
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeNewTeamMessage(b []byte) (*AppNewTeamMessage, error) {
	m := &AppNewTeamMessage{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Message, err = decodeTeamMessage(sub); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeEntityChanged(b []byte) (*AppEntityChanged, error) {
	m := &AppEntityChanged{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.EntityID = ptr(uint32(v))
		case num == 2 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Payload, err = decodeEntityPayload(sub); err != nil {
				return nil, err
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

func decodeClanChanged(b []byte) (*AppClanChanged, error) {
	m := &AppClanChanged{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		if num == 1 && typ == protowire.BytesType {
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.ClanInfo, err = decodeClanInfo(sub); err != nil {
				return nil, err
			}
			continue
		}
		if err := s.skip(num, typ); err != nil {
			return nil, err
		}
	}
}

func decodeNewClanMessage(b []byte) (*AppNewClanMessage, error) {
	m := &AppNewClanMessage{}
	s := scanner{b: b}
	for {
		num, typ, ok, err := s.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return m, nil
		}
		switch {
		case num == 1 && typ == protowire.VarintType:
			v, err := s.varint()
			if err != nil {
				return nil, err
			}
			m.ClanID = ptr(int64(v))
		case num == 2 && typ == protowire.BytesType:
			sub, err := s.bytes()
			if err != nil {
				return nil, err
			}
			if m.Message, err = decodeClanMessage(sub); err != nil {
				return nil, err
			}
		default:
			if err := s.skip(num, typ); err != nil {
				return nil, err
			}
		}
	}
}

// ----- сканер wire-формата -----

type scanner struct {
	b []byte
}

func (s *scanner) next() (protowire.Number, protowire.Type, bool, error) {
	if len(s.b) == 0 {
		return 0, 0, false, nil
	}
	num, typ, n := protowire.ConsumeTag(s.b)
	if n < 0 {
		return 0, 0, false, protowire.ParseError(n)
	}
	s.b = s.b[n:]
	return num, typ, true, nil
}

func (s *scanner) varint() (uint64, error) {
	v, n := protowire.ConsumeVarint(s.b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	s.b = s.b[n:]
	return v, nil
}

func (s *scanner) float() (float32, error) {
	v, n := protowire.ConsumeFixed32(s.b)
	if n < 0 {
		return 0, protowire.ParseError(n)
	}
	s.b = s.b[n:]
	return math.Float32frombits(v), nil
}

func (s *scanner) bytes() ([]byte, error) {
	v, n := protowire.ConsumeBytes(s.b)
	if n < 0 {
		return nil, protowire.ParseError(n)
	}
	s.b = s.b[n:]
	return v, nil
}

func (s *scanner) str() (string, error) {
	v, err := s.bytes()
	return string(v), err
}

func (s *scanner) skip(num protowire.Number, typ protowire.Type) error {
	n := protowire.ConsumeFieldValue(num, typ, s.b)
	if n < 0 {
		return protowire.ParseError(n)
	}
	s.b = s.b[n:]
	return nil
}

func ptr[T any](v T) *T { return &v }

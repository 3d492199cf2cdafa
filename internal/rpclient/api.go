package rpclient

import (
	"context"
	"time"

	"google.golang.org/protobuf/proto"

	"github.com/alexemanuelol/rustplus-go/internal/protocol"
)

// ========================= high-level API =========================

// opSpec — стоимость операции в токенах и её таймаут. Значения повторяют
// квоты companion-сервера: карта — самая дорогая и медленная, ввод
// камеры — копеечный.
type opSpec struct {
	name    string
	cost    float64
	timeout time.Duration
}

var (
	opGetInfo           = opSpec{"getInfo", 1, 10 * time.Second}
	opGetTime           = opSpec{"getTime", 1, 10 * time.Second}
	opGetMap            = opSpec{"getMap", 5, 30 * time.Second}
	opGetTeamInfo       = opSpec{"getTeamInfo", 1, 10 * time.Second}
	opGetTeamChat       = opSpec{"getTeamChat", 1, 10 * time.Second}
	opSendTeamMessage   = opSpec{"sendTeamMessage", 2, 10 * time.Second}
	opGetEntityInfo     = opSpec{"getEntityInfo", 1, 10 * time.Second}
	opSetEntityValue    = opSpec{"setEntityValue", 1, 10 * time.Second}
	opCheckSubscription = opSpec{"checkSubscription", 1, 10 * time.Second}
	opSetSubscription   = opSpec{"setSubscription", 1, 10 * time.Second}
	opGetMapMarkers     = opSpec{"getMapMarkers", 1, 10 * time.Second}
	opPromoteToLeader   = opSpec{"promoteToLeader", 1, 10 * time.Second}
	opGetClanInfo       = opSpec{"getClanInfo", 1, 10 * time.Second}
	opSetClanMotd       = opSpec{"setClanMotd", 1, 10 * time.Second}
	opGetClanChat       = opSpec{"getClanChat", 1, 10 * time.Second}
	opSendClanMessage   = opSpec{"sendClanMessage", 2, 10 * time.Second}
	opGetNexusAuth      = opSpec{"getNexusAuth", 1, 10 * time.Second}
	opCameraSubscribe   = opSpec{"cameraSubscribe", 1, 10 * time.Second}
	opCameraUnsubscribe = opSpec{"cameraUnsubscribe", 1, 10 * time.Second}
	opCameraInput       = opSpec{"cameraInput", 0.01, 10 * time.Second}
)

func (c *Client) GetInfo(id Identity, cb Callback) error {
	return c.sendOp(opGetInfo, id, &protocol.AppRequest{GetInfo: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetInfoAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetInfo, id, &protocol.AppRequest{GetInfo: &protocol.AppEmpty{}})
}

func (c *Client) GetTime(id Identity, cb Callback) error {
	return c.sendOp(opGetTime, id, &protocol.AppRequest{GetTime: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetTimeAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetTime, id, &protocol.AppRequest{GetTime: &protocol.AppEmpty{}})
}

func (c *Client) GetMap(id Identity, cb Callback) error {
	return c.sendOp(opGetMap, id, &protocol.AppRequest{GetMap: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetMapAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetMap, id, &protocol.AppRequest{GetMap: &protocol.AppEmpty{}})
}

func (c *Client) GetTeamInfo(id Identity, cb Callback) error {
	return c.sendOp(opGetTeamInfo, id, &protocol.AppRequest{GetTeamInfo: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetTeamInfoAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetTeamInfo, id, &protocol.AppRequest{GetTeamInfo: &protocol.AppEmpty{}})
}

func (c *Client) GetTeamChat(id Identity, cb Callback) error {
	return c.sendOp(opGetTeamChat, id, &protocol.AppRequest{GetTeamChat: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetTeamChatAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetTeamChat, id, &protocol.AppRequest{GetTeamChat: &protocol.AppEmpty{}})
}

func (c *Client) SendTeamMessage(id Identity, message string, cb Callback) error {
	return c.sendOp(opSendTeamMessage, id, &protocol.AppRequest{
		SendTeamMessage: &protocol.AppSendMessage{Message: proto.String(message)},
	}, cb)
}

func (c *Client) SendTeamMessageAsync(ctx context.Context, id Identity, message string) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opSendTeamMessage, id, &protocol.AppRequest{
		SendTeamMessage: &protocol.AppSendMessage{Message: proto.String(message)},
	})
}

func (c *Client) GetEntityInfo(id Identity, entityID uint32, cb Callback) error {
	return c.sendOp(opGetEntityInfo, id, &protocol.AppRequest{
		EntityID:      proto.Uint32(entityID),
		GetEntityInfo: &protocol.AppEmpty{},
	}, cb)
}

func (c *Client) GetEntityInfoAsync(ctx context.Context, id Identity, entityID uint32) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetEntityInfo, id, &protocol.AppRequest{
		EntityID:      proto.Uint32(entityID),
		GetEntityInfo: &protocol.AppEmpty{},
	})
}

func (c *Client) SetEntityValue(id Identity, entityID uint32, value bool, cb Callback) error {
	return c.sendOp(opSetEntityValue, id, &protocol.AppRequest{
		EntityID:       proto.Uint32(entityID),
		SetEntityValue: &protocol.AppSetEntityValue{Value: proto.Bool(value)},
	}, cb)
}

func (c *Client) SetEntityValueAsync(ctx context.Context, id Identity, entityID uint32, value bool) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opSetEntityValue, id, &protocol.AppRequest{
		EntityID:       proto.Uint32(entityID),
		SetEntityValue: &protocol.AppSetEntityValue{Value: proto.Bool(value)},
	})
}

func (c *Client) TurnSmartSwitchOn(id Identity, entityID uint32, cb Callback) error {
	return c.SetEntityValue(id, entityID, true, cb)
}

func (c *Client) TurnSmartSwitchOff(id Identity, entityID uint32, cb Callback) error {
	return c.SetEntityValue(id, entityID, false, cb)
}

func (c *Client) CheckSubscription(id Identity, entityID uint32, cb Callback) error {
	return c.sendOp(opCheckSubscription, id, &protocol.AppRequest{
		EntityID:          proto.Uint32(entityID),
		CheckSubscription: &protocol.AppEmpty{},
	}, cb)
}

func (c *Client) CheckSubscriptionAsync(ctx context.Context, id Identity, entityID uint32) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opCheckSubscription, id, &protocol.AppRequest{
		EntityID:          proto.Uint32(entityID),
		CheckSubscription: &protocol.AppEmpty{},
	})
}

func (c *Client) SetSubscription(id Identity, entityID uint32, value bool, cb Callback) error {
	return c.sendOp(opSetSubscription, id, &protocol.AppRequest{
		EntityID:        proto.Uint32(entityID),
		SetSubscription: &protocol.AppFlag{Value: proto.Bool(value)},
	}, cb)
}

func (c *Client) SetSubscriptionAsync(ctx context.Context, id Identity, entityID uint32, value bool) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opSetSubscription, id, &protocol.AppRequest{
		EntityID:        proto.Uint32(entityID),
		SetSubscription: &protocol.AppFlag{Value: proto.Bool(value)},
	})
}

func (c *Client) GetMapMarkers(id Identity, cb Callback) error {
	return c.sendOp(opGetMapMarkers, id, &protocol.AppRequest{GetMapMarkers: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetMapMarkersAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetMapMarkers, id, &protocol.AppRequest{GetMapMarkers: &protocol.AppEmpty{}})
}

func (c *Client) PromoteToLeader(id Identity, steamID uint64, cb Callback) error {
	return c.sendOp(opPromoteToLeader, id, &protocol.AppRequest{
		PromoteToLeader: &protocol.AppPromoteToLeader{SteamID: proto.Uint64(steamID)},
	}, cb)
}

func (c *Client) PromoteToLeaderAsync(ctx context.Context, id Identity, steamID uint64) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opPromoteToLeader, id, &protocol.AppRequest{
		PromoteToLeader: &protocol.AppPromoteToLeader{SteamID: proto.Uint64(steamID)},
	})
}

func (c *Client) GetClanInfo(id Identity, cb Callback) error {
	return c.sendOp(opGetClanInfo, id, &protocol.AppRequest{GetClanInfo: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetClanInfoAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetClanInfo, id, &protocol.AppRequest{GetClanInfo: &protocol.AppEmpty{}})
}

func (c *Client) SetClanMotd(id Identity, motd string, cb Callback) error {
	return c.sendOp(opSetClanMotd, id, &protocol.AppRequest{
		SetClanMotd: &protocol.AppSendMessage{Message: proto.String(motd)},
	}, cb)
}

func (c *Client) SetClanMotdAsync(ctx context.Context, id Identity, motd string) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opSetClanMotd, id, &protocol.AppRequest{
		SetClanMotd: &protocol.AppSendMessage{Message: proto.String(motd)},
	})
}

func (c *Client) GetClanChat(id Identity, cb Callback) error {
	return c.sendOp(opGetClanChat, id, &protocol.AppRequest{GetClanChat: &protocol.AppEmpty{}}, cb)
}

func (c *Client) GetClanChatAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetClanChat, id, &protocol.AppRequest{GetClanChat: &protocol.AppEmpty{}})
}

func (c *Client) SendClanMessage(id Identity, message string, cb Callback) error {
	return c.sendOp(opSendClanMessage, id, &protocol.AppRequest{
		SendClanMessage: &protocol.AppSendMessage{Message: proto.String(message)},
	}, cb)
}

func (c *Client) SendClanMessageAsync(ctx context.Context, id Identity, message string) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opSendClanMessage, id, &protocol.AppRequest{
		SendClanMessage: &protocol.AppSendMessage{Message: proto.String(message)},
	})
}

func (c *Client) GetNexusAuth(id Identity, appKey string, cb Callback) error {
	return c.sendOp(opGetNexusAuth, id, &protocol.AppRequest{
		GetNexusAuth: &protocol.AppGetNexusAuth{AppKey: proto.String(appKey)},
	}, cb)
}

func (c *Client) GetNexusAuthAsync(ctx context.Context, id Identity, appKey string) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opGetNexusAuth, id, &protocol.AppRequest{
		GetNexusAuth: &protocol.AppGetNexusAuth{AppKey: proto.String(appKey)},
	})
}

func (c *Client) CameraSubscribe(id Identity, identifier string, cb Callback) error {
	return c.sendOp(opCameraSubscribe, id, &protocol.AppRequest{
		CameraSubscribe: &protocol.AppCameraSubscribe{CameraID: proto.String(identifier)},
	}, cb)
}

func (c *Client) CameraSubscribeAsync(ctx context.Context, id Identity, identifier string) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opCameraSubscribe, id, &protocol.AppRequest{
		CameraSubscribe: &protocol.AppCameraSubscribe{CameraID: proto.String(identifier)},
	})
}

func (c *Client) CameraUnsubscribe(id Identity, cb Callback) error {
	return c.sendOp(opCameraUnsubscribe, id, &protocol.AppRequest{CameraUnsubscribe: &protocol.AppEmpty{}}, cb)
}

func (c *Client) CameraUnsubscribeAsync(ctx context.Context, id Identity) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opCameraUnsubscribe, id, &protocol.AppRequest{CameraUnsubscribe: &protocol.AppEmpty{}})
}

func (c *Client) CameraInput(id Identity, buttons int32, dx, dy float32, cb Callback) error {
	return c.sendOp(opCameraInput, id, &protocol.AppRequest{
		CameraInput: &protocol.AppCameraInput{
			Buttons:    proto.Int32(buttons),
			MouseDelta: &protocol.Vector2{X: proto.Float32(dx), Y: proto.Float32(dy)},
		},
	}, cb)
}

func (c *Client) CameraInputAsync(ctx context.Context, id Identity, buttons int32, dx, dy float32) (*protocol.AppResponse, error) {
	return c.awaitOp(ctx, opCameraInput, id, &protocol.AppRequest{
		CameraInput: &protocol.AppCameraInput{
			Buttons:    proto.Int32(buttons),
			MouseDelta: &protocol.Vector2{X: proto.Float32(dx), Y: proto.Float32(dy)},
		},
	})
}

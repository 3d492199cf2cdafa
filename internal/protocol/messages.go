package protocol

// Типы сообщений companion-протокола. Все опциональные поля — указатели,
// доступ только через Get*-методы (nil-безопасные, как в сгенерированном
// protobuf-коде).

type AppRequest struct {
	Seq         *uint32
	PlayerID    *uint64
	PlayerToken *int32
	EntityID    *uint32

	GetInfo           *AppEmpty
	GetTime           *AppEmpty
	GetMap            *AppEmpty
	GetTeamInfo       *AppEmpty
	GetTeamChat       *AppEmpty
	SendTeamMessage   *AppSendMessage
	GetEntityInfo     *AppEmpty
	SetEntityValue    *AppSetEntityValue
	CheckSubscription *AppEmpty
	SetSubscription   *AppFlag
	GetMapMarkers     *AppEmpty
	PromoteToLeader   *AppPromoteToLeader
	GetClanInfo       *AppEmpty
	SetClanMotd       *AppSendMessage
	GetClanChat       *AppEmpty
	SendClanMessage   *AppSendMessage
	GetNexusAuth      *AppGetNexusAuth
	CameraSubscribe   *AppCameraSubscribe
	CameraUnsubscribe *AppEmpty
	CameraInput       *AppCameraInput
}

func (m *AppRequest) GetSeq() uint32 {
	if m != nil && m.Seq != nil {
		return *m.Seq
	}
	return 0
}

func (m *AppRequest) GetPlayerID() uint64 {
	if m != nil && m.PlayerID != nil {
		return *m.PlayerID
	}
	return 0
}

func (m *AppRequest) GetPlayerToken() int32 {
	if m != nil && m.PlayerToken != nil {
		return *m.PlayerToken
	}
	return 0
}

func (m *AppRequest) GetEntityID() uint32 {
	if m != nil && m.EntityID != nil {
		return *m.EntityID
	}
	return 0
}

type AppMessage struct {
	Response  *AppResponse
	Broadcast *AppBroadcast
}

func (m *AppMessage) GetResponse() *AppResponse {
	if m != nil {
		return m.Response
	}
	return nil
}

func (m *AppMessage) GetBroadcast() *AppBroadcast {
	if m != nil {
		return m.Broadcast
	}
	return nil
}

type AppResponse struct {
	Seq   *uint32
	Error *AppError

	Success             *AppSuccess
	Info                *AppInfo
	Time                *AppTime
	Map                 *AppMap
	TeamInfo            *AppTeamInfo
	TeamChat            *AppTeamChat
	EntityInfo          *AppEntityInfo
	Flag                *AppFlag
	MapMarkers          *AppMapMarkers
	ClanInfo            *AppClanInfo
	ClanChat            *AppClanChat
	NexusAuth           *AppNexusAuth
	CameraSubscribeInfo *AppCameraInfo
}

func (m *AppResponse) GetSeq() uint32 {
	if m != nil && m.Seq != nil {
		return *m.Seq
	}
	return 0
}

func (m *AppResponse) GetError() *AppError {
	if m != nil {
		return m.Error
	}
	return nil
}

func (m *AppResponse) GetSuccess() *AppSuccess {
	if m != nil {
		return m.Success
	}
	return nil
}

func (m *AppResponse) GetInfo() *AppInfo {
	if m != nil {
		return m.Info
	}
	return nil
}

func (m *AppResponse) GetTime() *AppTime {
	if m != nil {
		return m.Time
	}
	return nil
}

func (m *AppResponse) GetMap() *AppMap {
	if m != nil {
		return m.Map
	}
	return nil
}

func (m *AppResponse) GetTeamInfo() *AppTeamInfo {
	if m != nil {
		return m.TeamInfo
	}
	return nil
}

func (m *AppResponse) GetTeamChat() *AppTeamChat {
	if m != nil {
		return m.TeamChat
	}
	return nil
}

func (m *AppResponse) GetEntityInfo() *AppEntityInfo {
	if m != nil {
		return m.EntityInfo
	}
	return nil
}

func (m *AppResponse) GetFlag() *AppFlag {
	if m != nil {
		return m.Flag
	}
	return nil
}

func (m *AppResponse) GetMapMarkers() *AppMapMarkers {
	if m != nil {
		return m.MapMarkers
	}
	return nil
}

func (m *AppResponse) GetClanInfo() *AppClanInfo {
	if m != nil {
		return m.ClanInfo
	}
	return nil
}

func (m *AppResponse) GetClanChat() *AppClanChat {
	if m != nil {
		return m.ClanChat
	}
	return nil
}

func (m *AppResponse) GetNexusAuth() *AppNexusAuth {
	if m != nil {
		return m.NexusAuth
	}
	return nil
}

func (m *AppResponse) GetCameraSubscribeInfo() *AppCameraInfo {
	if m != nil {
		return m.CameraSubscribeInfo
	}
	return nil
}

type AppBroadcast struct {
	TeamChanged   *AppTeamChanged
	TeamMessage   *AppNewTeamMessage
	EntityChanged *AppEntityChanged
	ClanChanged   *AppClanChanged
	ClanMessage   *AppNewClanMessage
	CameraRays    *AppCameraRays
}

func (m *AppBroadcast) GetTeamChanged() *AppTeamChanged {
	if m != nil {
		return m.TeamChanged
	}
	return nil
}

func (m *AppBroadcast) GetTeamMessage() *AppNewTeamMessage {
	if m != nil {
		return m.TeamMessage
	}
	return nil
}

func (m *AppBroadcast) GetEntityChanged() *AppEntityChanged {
	if m != nil {
		return m.EntityChanged
	}
	return nil
}

func (m *AppBroadcast) GetClanChanged() *AppClanChanged {
	if m != nil {
		return m.ClanChanged
	}
	return nil
}

func (m *AppBroadcast) GetClanMessage() *AppNewClanMessage {
	if m != nil {
		return m.ClanMessage
	}
	return nil
}

func (m *AppBroadcast) GetCameraRays() *AppCameraRays {
	if m != nil {
		return m.CameraRays
	}
	return nil
}

// ----- листовые payload'ы запросов -----

type AppEmpty struct{}

type AppFlag struct {
	Value *bool
}

func (m *AppFlag) GetValue() bool {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return false
}

type AppSendMessage struct {
	Message *string
}

func (m *AppSendMessage) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

type AppSetEntityValue struct {
	Value *bool
}

func (m *AppSetEntityValue) GetValue() bool {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return false
}

type AppPromoteToLeader struct {
	SteamID *uint64
}

func (m *AppPromoteToLeader) GetSteamID() uint64 {
	if m != nil && m.SteamID != nil {
		return *m.SteamID
	}
	return 0
}

type AppGetNexusAuth struct {
	AppKey *string
}

func (m *AppGetNexusAuth) GetAppKey() string {
	if m != nil && m.AppKey != nil {
		return *m.AppKey
	}
	return ""
}

type AppCameraSubscribe struct {
	CameraID *string
}

func (m *AppCameraSubscribe) GetCameraID() string {
	if m != nil && m.CameraID != nil {
		return *m.CameraID
	}
	return ""
}

type AppCameraInput struct {
	Buttons    *int32
	MouseDelta *Vector2
}

func (m *AppCameraInput) GetButtons() int32 {
	if m != nil && m.Buttons != nil {
		return *m.Buttons
	}
	return 0
}

func (m *AppCameraInput) GetMouseDelta() *Vector2 {
	if m != nil {
		return m.MouseDelta
	}
	return nil
}

type Vector2 struct {
	X *float32
	Y *float32
}

func (m *Vector2) GetX() float32 {
	if m != nil && m.X != nil {
		return *m.X
	}
	return 0
}

func (m *Vector2) GetY() float32 {
	if m != nil && m.Y != nil {
		return *m.Y
	}
	return 0
}

// ----- payload'ы ответов -----

type AppError struct {
	Error *string
}

func (m *AppError) GetError() string {
	if m != nil && m.Error != nil {
		return *m.Error
	}
	return ""
}

type AppSuccess struct{}

type AppInfo struct {
	Name          *string
	HeaderImage   *string
	URL           *string
	Map           *string
	MapSize       *uint32
	WipeTime      *uint32
	Players       *uint32
	MaxPlayers    *uint32
	QueuedPlayers *uint32
}

func (m *AppInfo) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *AppInfo) GetMap() string {
	if m != nil && m.Map != nil {
		return *m.Map
	}
	return ""
}

func (m *AppInfo) GetMapSize() uint32 {
	if m != nil && m.MapSize != nil {
		return *m.MapSize
	}
	return 0
}

func (m *AppInfo) GetPlayers() uint32 {
	if m != nil && m.Players != nil {
		return *m.Players
	}
	return 0
}

func (m *AppInfo) GetMaxPlayers() uint32 {
	if m != nil && m.MaxPlayers != nil {
		return *m.MaxPlayers
	}
	return 0
}

func (m *AppInfo) GetQueuedPlayers() uint32 {
	if m != nil && m.QueuedPlayers != nil {
		return *m.QueuedPlayers
	}
	return 0
}

type AppTime struct {
	DayLengthMinutes *float32
	TimeScale        *float32
	Sunrise          *float32
	Sunset           *float32
	Time             *float32
}

func (m *AppTime) GetTime() float32 {
	if m != nil && m.Time != nil {
		return *m.Time
	}
	return 0
}

func (m *AppTime) GetSunrise() float32 {
	if m != nil && m.Sunrise != nil {
		return *m.Sunrise
	}
	return 0
}

func (m *AppTime) GetSunset() float32 {
	if m != nil && m.Sunset != nil {
		return *m.Sunset
	}
	return 0
}

type AppMap struct {
	Width       *uint32
	Height      *uint32
	JpgImage    []byte
	OceanMargin *int32
	Monuments   []*AppMapMonument
	Background  *string
}

func (m *AppMap) GetWidth() uint32 {
	if m != nil && m.Width != nil {
		return *m.Width
	}
	return 0
}

func (m *AppMap) GetHeight() uint32 {
	if m != nil && m.Height != nil {
		return *m.Height
	}
	return 0
}

func (m *AppMap) GetJpgImage() []byte {
	if m != nil {
		return m.JpgImage
	}
	return nil
}

type AppMapMonument struct {
	Token *string
	X     *float32
	Y     *float32
}

func (m *AppMapMonument) GetToken() string {
	if m != nil && m.Token != nil {
		return *m.Token
	}
	return ""
}

type AppTeamInfo struct {
	LeaderSteamID *uint64
	Members       []*AppTeamMember
}

func (m *AppTeamInfo) GetLeaderSteamID() uint64 {
	if m != nil && m.LeaderSteamID != nil {
		return *m.LeaderSteamID
	}
	return 0
}

func (m *AppTeamInfo) GetMembers() []*AppTeamMember {
	if m != nil {
		return m.Members
	}
	return nil
}

type AppTeamMember struct {
	SteamID  *uint64
	Name     *string
	X        *float32
	Y        *float32
	IsOnline *bool
	IsAlive  *bool
}

func (m *AppTeamMember) GetSteamID() uint64 {
	if m != nil && m.SteamID != nil {
		return *m.SteamID
	}
	return 0
}

func (m *AppTeamMember) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *AppTeamMember) GetIsOnline() bool {
	if m != nil && m.IsOnline != nil {
		return *m.IsOnline
	}
	return false
}

func (m *AppTeamMember) GetIsAlive() bool {
	if m != nil && m.IsAlive != nil {
		return *m.IsAlive
	}
	return false
}

type AppTeamChat struct {
	Messages []*AppTeamMessage
}

func (m *AppTeamChat) GetMessages() []*AppTeamMessage {
	if m != nil {
		return m.Messages
	}
	return nil
}

type AppTeamMessage struct {
	SteamID *uint64
	Name    *string
	Message *string
	Time    *uint32
}

func (m *AppTeamMessage) GetSteamID() uint64 {
	if m != nil && m.SteamID != nil {
		return *m.SteamID
	}
	return 0
}

func (m *AppTeamMessage) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *AppTeamMessage) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

type AppEntityInfo struct {
	Type    *int32
	Payload *AppEntityPayload
}

func (m *AppEntityInfo) GetType() int32 {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return 0
}

func (m *AppEntityInfo) GetPayload() *AppEntityPayload {
	if m != nil {
		return m.Payload
	}
	return nil
}

type AppEntityPayload struct {
	Value    *bool
	Capacity *int32
}

func (m *AppEntityPayload) GetValue() bool {
	if m != nil && m.Value != nil {
		return *m.Value
	}
	return false
}

func (m *AppEntityPayload) GetCapacity() int32 {
	if m != nil && m.Capacity != nil {
		return *m.Capacity
	}
	return 0
}

type AppMapMarkers struct {
	Markers []*AppMarker
}

func (m *AppMapMarkers) GetMarkers() []*AppMarker {
	if m != nil {
		return m.Markers
	}
	return nil
}

type AppMarker struct {
	ID       *uint32
	Type     *int32
	X        *float32
	Y        *float32
	SteamID  *uint64
	Rotation *float32
	Radius   *float32
}

func (m *AppMarker) GetID() uint32 {
	if m != nil && m.ID != nil {
		return *m.ID
	}
	return 0
}

func (m *AppMarker) GetType() int32 {
	if m != nil && m.Type != nil {
		return *m.Type
	}
	return 0
}

type AppClanInfo struct {
	ClanID *int64
	Name   *string
	Motd   *string
}

func (m *AppClanInfo) GetClanID() int64 {
	if m != nil && m.ClanID != nil {
		return *m.ClanID
	}
	return 0
}

func (m *AppClanInfo) GetName() string {
	if m != nil && m.Name != nil {
		return *m.Name
	}
	return ""
}

func (m *AppClanInfo) GetMotd() string {
	if m != nil && m.Motd != nil {
		return *m.Motd
	}
	return ""
}

type AppClanChat struct {
	Messages []*AppClanMessage
}

func (m *AppClanChat) GetMessages() []*AppClanMessage {
	if m != nil {
		return m.Messages
	}
	return nil
}

type AppClanMessage struct {
	SteamID *uint64
	Name    *string
	Message *string
	Time    *int64
}

func (m *AppClanMessage) GetMessage() string {
	if m != nil && m.Message != nil {
		return *m.Message
	}
	return ""
}

type AppNexusAuth struct {
	ServerID    *string
	PlayerToken *int32
}

func (m *AppNexusAuth) GetServerID() string {
	if m != nil && m.ServerID != nil {
		return *m.ServerID
	}
	return ""
}

func (m *AppNexusAuth) GetPlayerToken() int32 {
	if m != nil && m.PlayerToken != nil {
		return *m.PlayerToken
	}
	return 0
}

type AppCameraInfo struct {
	Width        *int32
	Height       *int32
	NearPlane    *float32
	FarPlane     *float32
	ControlFlags *int32
}

func (m *AppCameraInfo) GetWidth() int32 {
	if m != nil && m.Width != nil {
		return *m.Width
	}
	return 0
}

func (m *AppCameraInfo) GetHeight() int32 {
	if m != nil && m.Height != nil {
		return *m.Height
	}
	return 0
}

func (m *AppCameraInfo) GetNearPlane() float32 {
	if m != nil && m.NearPlane != nil {
		return *m.NearPlane
	}
	return 0
}

func (m *AppCameraInfo) GetFarPlane() float32 {
	if m != nil && m.FarPlane != nil {
		return *m.FarPlane
	}
	return 0
}

func (m *AppCameraInfo) GetControlFlags() int32 {
	if m != nil && m.ControlFlags != nil {
		return *m.ControlFlags
	}
	return 0
}

type AppCameraRays struct {
	VerticalFov  *float32
	SampleOffset *int32
	RayData      []byte
	Distance     *float32
}

func (m *AppCameraRays) GetVerticalFov() float32 {
	if m != nil && m.VerticalFov != nil {
		return *m.VerticalFov
	}
	return 0
}

func (m *AppCameraRays) GetSampleOffset() int32 {
	if m != nil && m.SampleOffset != nil {
		return *m.SampleOffset
	}
	return 0
}

func (m *AppCameraRays) GetRayData() []byte {
	if m != nil {
		return m.RayData
	}
	return nil
}

// ----- broadcast payload'ы -----

type AppTeamChanged struct {
	PlayerID *uint64
	TeamInfo *AppTeamInfo
}

func (m *AppTeamChanged) GetTeamInfo() *AppTeamInfo {
	if m != nil {
		return m.TeamInfo
	}
	return nil
}

type AppNewTeamMessage struct {
	Message *AppTeamMessage
}

func (m *AppNewTeamMessage) GetMessage() *AppTeamMessage {
	if m != nil {
		return m.Message
	}
	return nil
}

type AppEntityChanged struct {
	EntityID *uint32
	Payload  *AppEntityPayload
}

func (m *AppEntityChanged) GetEntityID() uint32 {
	if m != nil && m.EntityID != nil {
		return *m.EntityID
	}
	return 0
}

func (m *AppEntityChanged) GetPayload() *AppEntityPayload {
	if m != nil {
		return m.Payload
	}
	return nil
}

type AppClanChanged struct {
	ClanInfo *AppClanInfo
}

func (m *AppClanChanged) GetClanInfo() *AppClanInfo {
	if m != nil {
		return m.ClanInfo
	}
	return nil
}

type AppNewClanMessage struct {
	ClanID  *int64
	Message *AppClanMessage
}

func (m *AppNewClanMessage) GetMessage() *AppClanMessage {
	if m != nil {
		return m.Message
	}
	return nil
}

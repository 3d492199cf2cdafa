package protocol

// Валидаторы формы: клиент зовёт их перед тем, как доверять
// опциональным полям декодированной структуры.

// ValidResponse — сообщение несёт ответ с заполненным seq.
func ValidResponse(m *AppMessage) bool {
	r := m.GetResponse()
	return r != nil && r.Seq != nil
}

// ValidCameraRays — broadcast несёт кадр камеры с лучами и смещением.
func ValidCameraRays(m *AppMessage) bool {
	r := m.GetBroadcast().GetCameraRays()
	return r != nil && r.SampleOffset != nil && len(r.RayData) > 0
}

// ValidCameraInfo — в ответе на подписку есть размеры кадра.
func ValidCameraInfo(m *AppCameraInfo) bool {
	return m != nil && m.Width != nil && m.Height != nil &&
		m.GetWidth() > 0 && m.GetHeight() > 0
}

// ValidTeamMessage — broadcast несёт сообщение тим-чата с текстом.
func ValidTeamMessage(m *AppMessage) bool {
	t := m.GetBroadcast().GetTeamMessage().GetMessage()
	return t != nil && t.Message != nil
}

package contracts

type WebhookDispatcher interface {
	SetWebhookUrl(sheetId string, address Address, webhookUrl string)
	GetWebhookUrl(sheetId string, address Address) string
	Notify(sheetId string, cells []*Cell)
	Start()
	Close()
}

package main

import (
	"bytes"
	"fmt"
	"net/http"
	"sync"
	"time"

	json "github.com/bytedance/sonic"

	"gridsheet/contracts"
)

const WebhookWorkersCount = 5

// SheetWebhooks maps canonical addresses to webhook URLs.
type SheetWebhooks map[contracts.Address]string

type WebhookSendCommand struct {
	Webhook string
	Cell    *contracts.Cell
}

// WebhookDispatcher pushes recomputed cells to subscribers: every edit
// queues the changed cells, a small worker pool POSTs them as JSON.
// Subscriptions live in memory for the lifetime of the process; the map
// is written by concurrent API handlers and read on queueing goroutines,
// so every access goes through the mutex.
type WebhookDispatcher struct {
	mu       sync.RWMutex
	queue    chan WebhookSendCommand
	webhooks map[string]SheetWebhooks
}

func NewWebhookDispatcher() *WebhookDispatcher {
	return &WebhookDispatcher{
		queue:    make(chan WebhookSendCommand, 20),
		webhooks: map[string]SheetWebhooks{},
	}
}

func (manager *WebhookDispatcher) SetWebhookUrl(sheetId string, address contracts.Address, webhookUrl string) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		manager.webhooks[sheetId] = SheetWebhooks{}
	}

	if webhookUrl == "" {
		delete(manager.webhooks[sheetId], address)
	} else {
		manager.webhooks[sheetId][address] = webhookUrl
	}
}

func (manager *WebhookDispatcher) GetWebhookUrl(sheetId string, address contracts.Address) string {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	if _, ok := manager.webhooks[sheetId]; !ok {
		return ""
	}

	if webhook, ok := manager.webhooks[sheetId][address]; ok {
		return webhook
	}

	return ""
}

func (manager *WebhookDispatcher) Notify(sheetId string, cells []*contracts.Cell) {
	manager.mu.RLock()
	_, ok := manager.webhooks[sheetId]
	manager.mu.RUnlock()

	if !ok {
		return
	}

	go manager.addToQueue(sheetId, cells)
}

func (manager *WebhookDispatcher) addToQueue(sheetId string, cells []*contracts.Cell) {
	// snapshot under the read lock; channel sends can block and must not
	// hold it
	commands := make([]WebhookSendCommand, 0, len(cells))

	manager.mu.RLock()
	if webhooks, ok := manager.webhooks[sheetId]; ok {
		for _, cell := range cells {
			if webhook, ok := webhooks[contracts.Address(cell.Address)]; ok {
				commands = append(commands, WebhookSendCommand{
					Webhook: webhook,
					Cell:    cell,
				})
			}
		}
	}
	manager.mu.RUnlock()

	for _, command := range commands {
		manager.queue <- command
	}
}

func (manager *WebhookDispatcher) Start() {
	for i := 0; i < WebhookWorkersCount; i++ {
		go manager.runWebhookSenderWorker()
	}
}

func (manager *WebhookDispatcher) Close() {
	close(manager.queue)
}

func (manager *WebhookDispatcher) runWebhookSenderWorker() {
	client := &http.Client{
		Timeout: time.Second * 5,
	}

	var response *http.Response
	var err error

	for command := range manager.queue {
		payload, _ := json.Marshal(command.Cell)
		response, err = client.Post(command.Webhook, "application/json", bytes.NewBuffer(payload))

		if err != nil {
			fmt.Printf("Webhook send error: %s\n", err)
		} else if response.StatusCode >= 300 {
			fmt.Printf("Unexpected webhook response HTTP status: %s\n", response.Status)
		}
	}
}

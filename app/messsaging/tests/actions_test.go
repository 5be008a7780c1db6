package tests

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/noteme-app/noteme/app/messsaging/consumers/v1/actions"
	"github.com/noteme-app/noteme/business/v1/notes"
	"github.com/noteme-app/noteme/persistence/v1/document"
	"github.com/noteme-app/noteme/platform/deploy"
	"github.com/noteme-app/noteme/platform/env"
	"github.com/noteme-app/noteme/platform/jsonbin"
	"github.com/noteme-app/noteme/platform/jsonbin/jsonbintest"
	"github.com/noteme-app/noteme/platform/logger"
	"github.com/noteme-app/noteme/sys"
	"gocloud.dev/pubsub"
	"gocloud.dev/pubsub/mempubsub"
)

type ActionTests struct {
	topic *pubsub.Topic
	store *jsonbintest.Server
}

func TestActions(t *testing.T) {
	log, err := logger.New("NoteMe-Messaging-Tests")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	// =======================================================================================================
	// Mocks

	// jsonbin
	store := jsonbintest.New(t)

	// =======================================================================================================
	// Setup configs
	sys.Configs.Store.BaseURL = store.URL()
	sys.Configs.Store.BinID = "test-bin"
	sys.Configs.Store.AccessKey = "test-key"
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "JSONBIN_OPERATION_TIMEOUT", "5s")

	// =======================================================================================================
	// Setup resources

	// logger
	sys.R.Log = log

	// document store
	sys.R.Store = jsonbin.New(sys.Configs.Store.BaseURL, sys.Configs.Store.BinID, sys.Configs.Store.AccessKey)

	// deploy hook
	sys.R.Deploy = deploy.Nop{}

	// =======================================================================================================
	// Messaging configuration

	topic := mempubsub.NewTopic()
	defer func() {
		_ = topic.Shutdown(context.Background())
	}()
	subscription := mempubsub.NewSubscription(topic, 1*time.Second)

	defer func() {
		_ = subscription.Shutdown(context.Background())
	}()

	withCancel, cancelFunc := context.WithCancel(context.Background())
	defer cancelFunc()

	go func() {
		if err := actions.Consume(withCancel, subscription, 1); err != nil {
			log.Errorf("listener error: %s", err)
		}
	}()

	// =======================================================================================================
	// Run tests

	actionTests := ActionTests{topic: topic, store: store}

	actionTests.testCreateUserEvent(t)
	actionTests.testAddNoteEvent(t)
	actionTests.testUnknownEventIgnored(t)
}

func (at *ActionTests) send(t *testing.T, event notes.Event) {
	marshal, err := json.Marshal(event)
	if err != nil {
		t.Fatal("failed to marshal event: ", err)
	}
	if err := at.topic.Send(context.Background(), &pubsub.Message{
		Body: marshal,
	}); err != nil {
		t.Fatal("failed to post message to topic: ", err)
	}
}

// waitWrites polls the fake bin until it has seen the wanted write count
func (at *ActionTests) waitWrites(t *testing.T, want int) {
	deadline := time.Now().Add(10 * time.Second)
	for at.store.Writes() < want {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %d writes, got %d", want, at.store.Writes())
		}
		time.Sleep(50 * time.Millisecond)
	}
}

func (at *ActionTests) testCreateUserEvent(t *testing.T) {
	at.send(t, notes.Event{
		Type: "createUser",
		Data: notes.NewUser{UserId: "queued_user", PasswordHash: "hash_q"},
	})

	at.waitWrites(t, 1)

	var doc document.Document
	at.store.Record(t, &doc)
	if len(doc.Users) != 1 || doc.Users[0].Id != "queued_user" {
		t.Fatalf("Test testCreateUserEvent: should have persisted \"queued_user\": %+v", doc)
	}
}

func (at *ActionTests) testAddNoteEvent(t *testing.T) {
	at.send(t, notes.Event{
		Type: "addNote",
		Data: notes.NewNote{UserId: "queued_user", PasswordHash: "hash_q", Text: " queued note "},
	})

	at.waitWrites(t, 2)

	var doc document.Document
	at.store.Record(t, &doc)
	if len(doc.Users[0].Notes) != 1 {
		t.Fatalf("Test testAddNoteEvent: should have persisted one note: %+v", doc)
	}
	if doc.Users[0].Notes[0].Id != 1 || doc.Users[0].Notes[0].Text != "queued note" {
		t.Fatalf("Test testAddNoteEvent: should have assigned id 1 and trimmed the text: %+v", doc.Users[0].Notes[0])
	}
}

func (at *ActionTests) testUnknownEventIgnored(t *testing.T) {
	writesBefore := at.store.Writes()

	at.send(t, notes.Event{Type: "dropTables", Data: nil})

	// the consumer logs and acks unknown types, nothing should be written
	time.Sleep(500 * time.Millisecond)
	if at.store.Writes() != writesBefore {
		t.Fatalf("Test testUnknownEventIgnored: should not have written to the store")
	}
}

package actions

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/noteme-app/noteme/business/v1/notes"
	"github.com/noteme-app/noteme/sys"
	"gocloud.dev/pubsub"
)

func Consume(ctx context.Context, sub *pubsub.Subscription, maxWorkers int) error {
	logger := sys.R.Log
	workers := make(chan int, maxWorkers)

	var err error
	for {
		message, rErr := sub.Receive(ctx)
		if rErr != nil {
			err = rErr
			break
		}

		go func(m *pubsub.Message) {
			workers <- 1
			defer func() { <-workers }()
			defer m.Ack()

			logger.Infof("message received: %s", string(m.Body))
			var e notes.Event
			if err := json.Unmarshal(m.Body, &e); err != nil {
				logger.Error("failed to parse body: ", err)
				return
			}

			switch e.Type {
			case "createUser":
				var c notes.NewUser
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &c)

				if err := notes.CreateUser(ctx, c); err != nil {
					logger.Errorf("failed to create user for event %+v: err: %s", e.Data, err)
				}
			case "addNote":
				var a notes.NewNote
				marshal, _ := json.Marshal(e.Data)
				_ = json.Unmarshal(marshal, &a)

				if _, err := notes.AddNote(ctx, a); err != nil {
					logger.Errorf("failed to add note for event %+v: err: %s", e.Data, err)
				}
			default:
				logger.Error("unknown event type: ", e.Type)
			}
		}(message)
	}

	for w := 0; w < maxWorkers; w++ {
		workers <- 1
	}

	if !errors.Is(err, context.Canceled) {
		return err
	}

	return nil
}

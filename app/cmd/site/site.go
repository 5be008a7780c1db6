package site

import (
	"context"
	"encoding/json"
	"os"

	"github.com/noteme-app/noteme/persistence/v1/document"
	"github.com/noteme-app/noteme/platform/env"
	"github.com/noteme-app/noteme/platform/jsonbin"
	"github.com/noteme-app/noteme/sys"
	"go.uber.org/zap"
)

func ListCommands() {
	println("Site Commands")
	println("\tbuild\t\t\t- Renders the static site into the output dir")
	println("\tclean\t\t\t- Removes the output dir")
	println("\thelp\t\t\t- Print the commands available")
}

func Run(options []string) {
	if len(options) == 0 {
		ListCommands()
		return
	}
	// empty logger
	log := zap.NewNop().Sugar()
	initVars(log)
	switch options[0] {
	case "build":
		println("building site")
		doc, err := load()
		if err != nil {
			println("failed to load document:", err.Error())
			return
		}
		if err := Build(doc, sys.Configs.Site.PublicDir, sys.Configs.Site.OutputDir); err != nil {
			println("failed to build site:", err.Error())
		} else {
			println("built site into", sys.Configs.Site.OutputDir)
		}
	case "clean":
		println("cleaning site")
		if err := os.RemoveAll(sys.Configs.Site.OutputDir); err != nil {
			println("failed to clean site:", err.Error())
		} else {
			println("cleaned", sys.Configs.Site.OutputDir)
		}
	case "help":
		fallthrough
	default:
		ListCommands()
	}
}

func initVars(log *zap.SugaredLogger) {
	sys.Configs.Store.BaseURL = env.OrDefault(log, "JSONBIN_BASE_URL", "https://api.jsonbin.io/v3")
	sys.Configs.Store.BinID = env.OrDefault(log, "JSONBIN_BIN_ID", "")
	sys.Configs.Store.AccessKey = env.OrDefault(log, "JSONBIN_API_KEY", "")
	sys.Configs.Store.OperationTimeout = env.DurationDefault(log, "JSONBIN_OPERATION_TIMEOUT", "10s")
	sys.Configs.Site.DataFile = env.OrDefault(log, "SITE_DATA_FILE", "data.json")
	sys.Configs.Site.PublicDir = env.OrDefault(log, "SITE_PUBLIC_DIR", "public")
	sys.Configs.Site.OutputDir = env.OrDefault(log, "SITE_OUTPUT_DIR", "dist")

	sys.R.Log = log
	if sys.Configs.Store.BinID != "" && sys.Configs.Store.AccessKey != "" {
		sys.R.Store = jsonbin.New(sys.Configs.Store.BaseURL, sys.Configs.Store.BinID, sys.Configs.Store.AccessKey)
	}
}

// load reads the document from the store when bin credentials are set,
// otherwise from the local data file
func load() (document.Document, error) {
	if sys.R.Store != nil {
		return document.Read(context.Background())
	}

	data, err := os.ReadFile(sys.Configs.Site.DataFile)
	if err != nil {
		return document.Document{}, err
	}
	doc := document.Document{Users: []document.User{}}
	if err := json.Unmarshal(data, &doc); err != nil {
		return document.Document{}, err
	}
	return doc, nil
}

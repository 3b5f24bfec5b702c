package main

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"

	"github.com/pivolan/csv_dashboard/config"
)

var bot *tgbotapi.BotAPI
var tgChatId int64

func main() {
	fmt.Println("started")
	cfg := config.GetConfig()
	csvPath = cfg.CsvPath

	// Warm the table cache so the first dashboard request is instant; a
	// missing file is reported per-request, not fatal here.
	if table, schema, err := LoadTable(csvPath); err != nil {
		log.Printf("cannot load dataset %s: %v", csvPath, err)
	} else {
		fmt.Printf("loaded %s: %d rows, %d columns\n", csvPath, table.NumRows(), len(schema))
	}

	if cfg.TgToken != "" && cfg.TgChatId != "" {
		var err error
		bot, err = tgbotapi.NewBotAPI(cfg.TgToken)
		if err != nil {
			log.Fatal("tg error", err)
		}
		tgChatId, err = strconv.ParseInt(cfg.TgChatId, 10, 64)
		if err != nil {
			log.Fatal("tg chat id error", err)
		}
		log.Printf("Authorized on account %s", bot.Self.UserName)
	}

	http.HandleFunc("/", handleDashboard)
	http.HandleFunc("/chart/", handleChart)
	http.HandleFunc("/export", handleExport)
	http.HandleFunc("/share", handleShare)

	fmt.Println("listen on: http://localhost" + cfg.ListenAddr)
	err := http.ListenAndServe(cfg.ListenAddr, nil)
	if err != nil {
		log.Fatalln("Error starting server:", err)
	}
}

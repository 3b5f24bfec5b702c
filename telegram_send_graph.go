package main

import (
	"fmt"
	"log"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

// Telegram photo uploads above this size are delivered as documents instead.
const maxSizePhoto = 150000

// sendGraphVisualization отправляет визуализацию в чат с соответствующими пояснениями.
func sendGraphVisualization(graph []byte, visualType string, columnName string, chatID int64, api *tgbotapi.BotAPI) error {
	fileName := fmt.Sprintf("%s_%s_%s.png",
		visualType,
		columnName,
		time.Now().Format("20060102-150405"))

	pngFile := tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: graph,
	}

	caption := generateVizualDescription(visualType, columnName)

	var err error
	if len(graph) < maxSizePhoto {
		docMsg := tgbotapi.NewPhotoUpload(chatID, pngFile)
		docMsg.Caption = caption
		_, err = api.Send(docMsg)
	} else {
		docMsg := tgbotapi.NewDocumentUpload(chatID, pngFile)
		docMsg.Caption = caption
		_, err = api.Send(docMsg)
	}
	if err != nil {
		log.Printf("error sending %s visualization for column %s: %v", visualType, columnName, err)
		return err
	}
	return nil
}

func generateVizualDescription(visualType, columnName string) string {
	switch visualType {
	case "bar":
		return fmt.Sprintf("Grouped averages: %s\nShows the mean value per category, sorted descending.", columnName)
	case "histogram":
		return fmt.Sprintf("Distribution histogram: %s\nShows how often value ranges occur in the filtered data.", columnName)
	case "scatter":
		return fmt.Sprintf("Scatter plot: %s\nEach point is one row of the filtered dataset.", columnName)
	case "pie":
		return fmt.Sprintf("Category distribution: %s\nTop categories by frequency.", columnName)
	default:
		return fmt.Sprintf("Data visualization: %s", columnName)
	}
}

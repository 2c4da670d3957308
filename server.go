package main

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"log"
	"net/http"

	"github.com/kapil-777/thermal-go/internal/bitmap"
	"github.com/kapil-777/thermal-go/internal/printer"
)

type server struct {
	device *printer.Device
}

func (s *server) handlePrint(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	isPreview := req.URL.Query().Get("preview") != ""

	contents, err := io.ReadAll(req.Body)
	if err != nil {
		log.Printf("error reading request body: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	img, _, err := image.Decode(bytes.NewReader(contents))
	if err != nil {
		log.Printf("error decoding image: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if isPreview {
		// Run the pipeline but return the dithered result instead of
		// printing it.
		result := bitmap.ForPrinter(img, s.device.MaxWidth(), true)
		w.Header().Add("Content-Type", "image/png")
		if err = png.Encode(w, result); err != nil {
			log.Printf("error encoding preview result: %v", err)
		}
		return
	}

	if err = s.device.PrintImage(img); err != nil {
		log.Printf("error printing image: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func serve(address string, device *printer.Device) error {
	server := &server{device: device}
	http.HandleFunc("/print", server.handlePrint)
	return http.ListenAndServe(address, nil)
}

package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/kapil-777/thermal-go/internal/printer"
	"github.com/kapil-777/thermal-go/internal/transport"
)

func main() {
	var port, filePath, text, qrText, serveAddress string
	var baud, feed int
	var underlined bool
	flag.StringVar(&port, "port", "", "the serial port to use for the printer")
	flag.IntVar(&baud, "baud", 19200, "the baud rate of the serial port")
	flag.StringVar(&filePath, "file", "", "the path to the image to print, if any")
	flag.StringVar(&text, "text", "", "a line of text to print, if any")
	flag.BoolVar(&underlined, "underline", false, "underline the printed text")
	flag.StringVar(&qrText, "qr", "", "text to print as a QR code, if any")
	flag.IntVar(&feed, "feed", 0, "the number of lines to feed after printing")
	flag.StringVar(&serveAddress, "serve", "", "the address to serve on, if any")
	flag.Parse()

	if filePath != "" && serveAddress != "" {
		fmt.Fprintf(os.Stderr, "only one of -file and -serve may be specified")
		os.Exit(-1)
	}

	var conn transport.Connection
	if port != "" {
		conn = transport.NewSerial(port, baud)
	} else {
		conn = transport.NewStream(os.Stdout)
	}
	if err := conn.Open(); err != nil {
		log.Fatalf("error opening '%v': %v", port, err)
	}
	defer conn.Close()

	device := printer.New(conn)

	if serveAddress != "" {
		if err := serve(serveAddress, device); err != nil {
			log.Fatalf("serve error: %v", err)
		}
		return
	}

	if text != "" {
		if err := printText(device, text, underlined); err != nil {
			log.Fatalf("error printing text: %v", err)
		}
	}

	if filePath != "" {
		img, err := loadImage(filePath)
		if err != nil {
			log.Fatalf("error reading '%v': %v", filePath, err)
		}
		if err := device.PrintImage(img); err != nil {
			log.Fatalf("error printing image: %v", err)
		}
	}

	if qrText != "" {
		if err := device.PrintQRCode(qrText); err != nil {
			log.Fatalf("error printing QR code: %v", err)
		}
	}

	if feed > 0 {
		if err := device.Feed(feed); err != nil {
			log.Fatalf("error feeding paper: %v", err)
		}
	}
}

func printText(device *printer.Device, text string, underlined bool) error {
	if underlined {
		if err := device.SetUnderline(true); err != nil {
			return err
		}
	}
	if err := device.Print(text); err != nil {
		return err
	}
	if underlined {
		return device.SetUnderline(false)
	}
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// gencert, DEV_TLS için localhost.crt ve localhost.key dosyalarını üretir.
//
//	go run ./cmd/gencert shop.localhost 192.168.1.133
package main

import (
	"flag"
	"log"

	"jewelhub/internal/devcert"
)

func main() {
	certPath := flag.String("cert", "localhost.crt", "sertifika dosyası")
	keyPath := flag.String("key", "localhost.key", "anahtar dosyası")
	flag.Parse()

	hosts := flag.Args()
	if len(hosts) == 0 {
		hosts = devcert.DefaultHosts
	}
	if err := devcert.WriteFiles(hosts, *certPath, *keyPath); err != nil {
		log.Fatalf("Sertifika oluşturulamadı: %v", err)
	}
	log.Printf("Sertifika oluşturuldu: %s, %s (hosts: %v)", *certPath, *keyPath, hosts)
}

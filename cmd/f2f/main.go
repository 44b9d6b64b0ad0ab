// Command f2f generates farm-to-fork ordering documents: buyer orders,
// seller pick lists and VAT invoices, as A4 PDFs saved locally or uploaded
// to S3.
package main

func main() {
	execute()
}

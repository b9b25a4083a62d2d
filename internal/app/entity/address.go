package entity

type Address struct {
	Label        string
	Street       string
	City         string
	State        string
	ZipCode      string
	Country      string
	Instructions string
}

package cipher_test

import (
	"fmt"

	"github.com/katalvlaran/lvlcipher/cipher"
)

// ExampleGenerate encrypts HELLO under a fixed Hill matrix.
func ExampleGenerate() {
	p, err := cipher.Generate(cipher.Hill2x2, "Hello", cipher.WithMatrix([][]int{{3, 3}, {2, 5}}))
	if err != nil {
		fmt.Println(err)
		return
	}
	key := p.Key.(*cipher.HillKey)
	plain, _ := p.Decrypt()
	fmt.Println(p.Family(), p.Encrypted, key.Padding)
	fmt.Print(key.Decryption)
	fmt.Println(plain)
	// Output:
	// Hill 2x2 LIOZHN 1
	// [15, 17]
	// [20, 9]
	// HELLO
}

func ExampleColumnarKey_Encrypt() {
	key, _ := cipher.NewColumnarKey("ZEBRA")
	enc, pad, _ := key.Encrypt("We are discovered")
	fmt.Println(key.Order, enc, pad)
	// Output:
	// [4 2 1 3 0] EODASREIERCEWDV 0
}

func ExamplePortaTableau() {
	for i, row := range cipher.PortaTableau()[:3] {
		fmt.Printf("%c%c %s\n", 'A'+2*i, 'B'+2*i, row)
	}
	// Output:
	// AB NOPQRSTUVWXYZ
	// CD OPQRSTUVWXYZN
	// EF PQRSTUVWXYZNO
}

package pace

import (
	"bytes"
	"fmt"
)

func ExampleExchanger() {
	initiatorID := []byte("client")
	responderID := []byte("server")
	password := []byte("password")
	sessionID := []byte("8a7cd2f52378c49f50d3751f261778dd")

	// Each party describes the session from its own point of view.
	client := &Parameters{LocalID: initiatorID, RemoteID: responderID, SessionID: sessionID}
	server := &Parameters{LocalID: responderID, RemoteID: initiatorID, SessionID: sessionID}

	initiator, err := client.Initiator(password)
	if err != nil {
		panic(err)
	}

	responder, err := server.Responder(password)
	if err != nil {
		panic(err)
	}

	// The public elements are exchanged over any transport, in cleartext.
	epki := initiator.Send()
	epkr := responder.Send()

	// Each party finalizes the exchange with the peer's element, and obtains the synchronized
	// transcript to extract session keys from.
	ti, err := initiator.Receive(epkr)
	if err != nil {
		panic(err)
	}

	tr, err := responder.Receive(epki)
	if err != nil {
		panic(err)
	}

	if bytes.Equal(ti.PRF(32), tr.PRF(32)) {
		fmt.Println("Success ! Both parties share the same secret session key !")
	} else {
		fmt.Println("Failed. Initiator and responder keys are different.")
	}
	// Output: Success ! Both parties share the same secret session key !
}

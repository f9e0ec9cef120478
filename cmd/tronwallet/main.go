// @title        TRON Wallet API
// @version      1.0
// @description  Local TRON wallet: balances, safety checks and TRX / USDT transfers signed with a locally held key.
// @BasePath     /
package main

func main() {
	Execute()
}
